package query

import (
	"testing"

	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		def       int
		wantSkip  int
		wantLimit int
	}{
		{"defaults", 0, 0, 10, 0, 10},
		{"first page explicit", 1, 10, 10, 0, 10},
		{"second page", 2, 10, 10, 10, 10},
		{"custom limit", 3, 5, 10, 10, 5},
		{"negative page falls back to first", -2, 5, 10, 0, 5},
		{"negative limit falls back to default", 2, -7, 10, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PageWindow(tt.page, tt.limit, tt.def)
			assert.Equal(t, tt.wantSkip, p.Skip)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestSkipWindow(t *testing.T) {
	tests := []struct {
		name      string
		skip      int
		limit     int
		def       int
		wantSkip  int
		wantLimit int
	}{
		{"defaults", 0, 0, 6, 0, 6},
		{"explicit window", 12, 6, 6, 12, 6},
		{"negative skip clamps to zero", -3, 6, 6, 0, 6},
		{"zero limit falls back to default", 6, 0, 6, 6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := SkipWindow(tt.skip, tt.limit, tt.def)
			assert.Equal(t, tt.wantSkip, p.Skip)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestStatusFilter(t *testing.T) {
	assert.Equal(t, "", StatusFilter(""))
	assert.Equal(t, "", StatusFilter(StatusAll))
	assert.Equal(t, "pending", StatusFilter("pending"))
	assert.Equal(t, "blocked", StatusFilter("blocked"))
}

func TestScopeDonations(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		status    string
		wantEmail string
		wantStat  string
	}{
		{"plain user sees own requests", models.RoleUser, "", "alice@example.com", ""},
		{"donor sees own requests", models.RoleDonor, "pending", "alice@example.com", "pending"},
		{"admin sees everything", models.RoleAdmin, "", "", ""},
		{"volunteer sees everything", models.RoleVolunteer, "done", "", "done"},
		{"all sentinel removes the status filter", models.RoleAdmin, StatusAll, "", ""},
		{"unknown role is restricted to own requests", "superuser", "", "alice@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := ScopeDonations("alice@example.com", tt.role, tt.status)
			assert.Equal(t, tt.wantEmail, scope.RequesterEmail)
			assert.Equal(t, tt.wantStat, scope.Status)
		})
	}
}
