package dto

type CreateDonationRequest struct {
	RequesterEmail    string `json:"requesterEmail" validate:"required,email"`
	RequesterName     string `json:"requesterName"`
	RecipientName     string `json:"recipientName"`
	RecipientDistrict string `json:"recipientDistrict"`
	RecipientUpazila  string `json:"recipientUpazila"`
	Hospital          string `json:"hospitalName"`
	FullAddress       string `json:"fullAddress"`
	BloodGroup        string `json:"bloodGroup" validate:"required"`
	DonationDate      string `json:"donationDate" validate:"required"`
	DonationTime      string `json:"donationTime"`
	RequestMessage    string `json:"requestMessage"`
}

// UpdateDonationRequest carries the editable fields of a donation
// request. The primary key and the requester identity are not part of
// the payload.
type UpdateDonationRequest struct {
	RecipientName     *string `json:"recipientName"`
	RecipientDistrict *string `json:"recipientDistrict"`
	RecipientUpazila  *string `json:"recipientUpazila"`
	Hospital          *string `json:"hospitalName"`
	FullAddress       *string `json:"fullAddress"`
	BloodGroup        *string `json:"bloodGroup"`
	DonationDate      *string `json:"donationDate"`
	DonationTime      *string `json:"donationTime"`
	RequestMessage    *string `json:"requestMessage"`
}

func (r *UpdateDonationRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.RecipientName != nil {
		fields["recipient_name"] = *r.RecipientName
	}
	if r.RecipientDistrict != nil {
		fields["recipient_district"] = *r.RecipientDistrict
	}
	if r.RecipientUpazila != nil {
		fields["recipient_upazila"] = *r.RecipientUpazila
	}
	if r.Hospital != nil {
		fields["hospital"] = *r.Hospital
	}
	if r.FullAddress != nil {
		fields["full_address"] = *r.FullAddress
	}
	if r.BloodGroup != nil {
		fields["blood_group"] = *r.BloodGroup
	}
	if r.DonationDate != nil {
		fields["donation_date"] = *r.DonationDate
	}
	if r.DonationTime != nil {
		fields["donation_time"] = *r.DonationTime
	}
	if r.RequestMessage != nil {
		fields["request_message"] = *r.RequestMessage
	}
	return fields
}

// UpdateDonationStatusRequest moves a request through its lifecycle and
// optionally records the fulfilling donor.
type UpdateDonationStatusRequest struct {
	Status     string `json:"status" validate:"required"`
	DonorName  string `json:"donorName"`
	DonorEmail string `json:"donorEmail"`
}
