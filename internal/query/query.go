// Package query turns raw request parameters into the filters and
// pagination windows the stores execute. All functions are pure; the
// caller supplies the already-verified identity and the freshly resolved
// role, never values claimed by the client.
package query

import "github.com/lifeline-connect/lifeline-backend/internal/models"

// Per-endpoint listing defaults.
const (
	DefaultUserLimit     = 10
	DefaultDonationLimit = 3
	DefaultPendingLimit  = 5
	DefaultBlogLimit     = 6
)

// StatusAll is the sentinel filter value meaning "no status restriction",
// not a literal status.
const StatusAll = "all"

// Pagination is a resolved skip/limit window.
type Pagination struct {
	Skip  int
	Limit int
}

// PageWindow resolves 1-indexed page/limit parameters. Zero, negative or
// unparsable inputs (which arrive here as their zero value) fall back to
// page 1 and the endpoint's default limit.
func PageWindow(page, limit, defaultLimit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return Pagination{Skip: (page - 1) * limit, Limit: limit}
}

// SkipWindow resolves direct skip/limit parameters, used by the blog
// listing. Negative skip falls back to 0.
func SkipWindow(skip, limit, defaultLimit int) Pagination {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return Pagination{Skip: skip, Limit: limit}
}

// StatusFilter normalizes a status query parameter: absent or the "all"
// sentinel means no restriction and comes back as the empty string.
func StatusFilter(status string) string {
	if status == StatusAll {
		return ""
	}
	return status
}

// DonationScope is the visibility filter for donation-request listings.
// An empty RequesterEmail means full visibility.
type DonationScope struct {
	RequesterEmail string
	Status         string
}

// ScopeDonations builds the listing filter for a caller. Everyone sees
// only their own requests; admins and volunteers see all. The status
// filter is layered after the visibility decision.
func ScopeDonations(callerEmail, callerRole, status string) DonationScope {
	scope := DonationScope{RequesterEmail: callerEmail}
	if callerRole == models.RoleAdmin || callerRole == models.RoleVolunteer {
		scope.RequesterEmail = ""
	}
	scope.Status = StatusFilter(status)
	return scope
}

// DonorSearch is the public donor-directory filter. The store always pins
// role=donor and status=active on top of these optional equality filters.
type DonorSearch struct {
	BloodGroup string
	District   string
	Upazila    string
}
