package dto

type RegisterUserRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"omitempty,min=8"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
}

// UpdateUserRequest carries the profile fields a user may change about
// themselves. Pointers distinguish "not sent" from "set to empty"; the
// primary key is deliberately not part of the payload.
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Avatar     *string `json:"avatar"`
	BloodGroup *string `json:"bloodGroup"`
	District   *string `json:"district"`
	Upazila    *string `json:"upazila"`
}

// Fields translates the present payload members into column assignments.
func (r *UpdateUserRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Avatar != nil {
		fields["avatar"] = *r.Avatar
	}
	if r.BloodGroup != nil {
		fields["blood_group"] = *r.BloodGroup
	}
	if r.District != nil {
		fields["district"] = *r.District
	}
	if r.Upazila != nil {
		fields["upazila"] = *r.Upazila
	}
	return fields
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type RoleResponse struct {
	Role string `json:"role"`
}
