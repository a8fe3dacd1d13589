package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/config"
	"github.com/lifeline-connect/lifeline-backend/internal/handlers"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/routes"
	"github.com/lifeline-connect/lifeline-backend/internal/services"
	"github.com/lifeline-connect/lifeline-backend/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "handlers-test-secret"

type testEnv struct {
	app       *fiber.App
	users     *memory.UserStore
	donations *memory.DonationRequestStore
	blogs     *memory.BlogStore
	tokens    *memory.RefreshTokenStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:        testSecret,
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}

	env := &testEnv{
		users:     memory.NewUserStore(),
		donations: memory.NewDonationRequestStore(),
		blogs:     memory.NewBlogStore(),
		tokens:    memory.NewRefreshTokenStore(),
	}

	userService := services.NewUserService(env.users)
	donationService := services.NewDonationService(env.donations)
	blogService := services.NewBlogService(env.blogs)
	authService := services.NewAuthService(env.users, env.tokens, cfg)

	env.app = fiber.New()
	routes.Setup(
		env.app,
		cfg,
		userService,
		handlers.NewAuthHandler(authService),
		handlers.NewUserHandler(userService),
		handlers.NewDonationHandler(donationService, userService),
		handlers.NewBlogHandler(blogService),
		handlers.NewHealthHandler(nil),
	)
	return env
}

func (e *testEnv) seedUser(t *testing.T, email, role, password string) *models.User {
	t.Helper()
	u := &models.User{
		Email:  email,
		Name:   "Seeded User",
		Role:   role,
		Status: models.StatusActive,
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		u.Password = string(hash)
	}
	require.NoError(t, e.users.Create(t.Context(), u))
	return u
}

func (e *testEnv) seedDonation(t *testing.T, requesterEmail, date, status string) *models.DonationRequest {
	t.Helper()
	r := &models.DonationRequest{
		RequesterEmail: requesterEmail,
		RecipientName:  "Recipient",
		BloodGroup:     "O+",
		DonationDate:   date,
		Status:         status,
	}
	require.NoError(t, e.donations.Create(t.Context(), r))
	return r
}

func token(t *testing.T, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	parsed := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func doJSONList(t *testing.T, app *fiber.App, method, path, bearer string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestRegisterUser(t *testing.T) {
	env := newTestEnv(t)

	payload := fiber.Map{
		"email":      "alice@example.com",
		"name":       "Alice",
		"bloodGroup": "A+",
		"district":   "Dhaka",
	}

	resp, body := doJSON(t, env.app, "POST", "/users", "", payload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User stored successfully", body["message"])
	assert.NotEmpty(t, body["insertedId"])

	resp, body = doJSON(t, env.app, "POST", "/users", "", payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "User already exists", body["message"])
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := doJSON(t, env.app, "POST", "/users", "", fiber.Map{"email": "not-an-email"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, env.users.Calls())
}

func TestGetRoleDefaultsToUser(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@example.com", models.RoleAdmin, "")
	bearer := token(t, "admin@example.com")

	resp, body := doJSON(t, env.app, "GET", "/users/role/admin@example.com", bearer, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.RoleAdmin, body["role"])

	resp, body = doJSON(t, env.app, "GET", "/users/role/stranger@example.com", bearer, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.RoleUser, body["role"])
}

func TestGetUserByEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@example.com", models.RoleUser, "")
	bearer := token(t, "alice@example.com")

	resp, body := doJSON(t, env.app, "GET", "/users/alice@example.com", bearer, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice@example.com", body["email"])

	resp, body = doJSON(t, env.app, "GET", "/users/nobody@example.com", bearer, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", body["message"])
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@example.com", models.RoleUser, "")
	bearer := token(t, "alice@example.com")

	resp, body := doJSON(t, env.app, "PATCH", "/users/alice@example.com", bearer, fiber.Map{"district": "Dhaka"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["matchedCount"])
	assert.EqualValues(t, 1, body["modifiedCount"])

	// Same value again matches but modifies nothing.
	resp, body = doJSON(t, env.app, "PATCH", "/users/alice@example.com", bearer, fiber.Map{"district": "Dhaka"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["matchedCount"])
	assert.EqualValues(t, 0, body["modifiedCount"])

	resp, _ = doJSON(t, env.app, "PATCH", "/users/alice@example.com", bearer, fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, env.app, "PATCH", "/users/nobody@example.com", bearer, fiber.Map{"district": "Dhaka"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", body["message"])
}

func TestUserStatusAndRoleGates(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@example.com", models.RoleAdmin, "")
	env.seedUser(t, "volunteer@example.com", models.RoleVolunteer, "")
	target := env.seedUser(t, "target@example.com", models.RoleUser, "")

	adminTok := token(t, "admin@example.com")
	volTok := token(t, "volunteer@example.com")

	// Volunteers may block accounts.
	resp, _ := doJSON(t, env.app, "PATCH", "/users/"+target.ID.String()+"/status", volTok, fiber.Map{"status": "blocked"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// But only admins may change roles.
	resp, _ = doJSON(t, env.app, "PATCH", "/users/"+target.ID.String()+"/role", volTok, fiber.Map{"role": models.RoleVolunteer})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, env.app, "PATCH", "/users/"+target.ID.String()+"/role", adminTok, fiber.Map{"role": models.RoleDonor})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, env.app, "PATCH", "/users/"+target.ID.String()+"/role", adminTok, fiber.Map{"role": "superuser"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, env.app, "PATCH", "/users/"+target.ID.String()+"/status", adminTok, fiber.Map{"status": "frozen"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, env.app, "PATCH", "/users/not-a-uuid/status", adminTok, fiber.Map{"status": "blocked"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAllUsersPagination(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@example.com", models.RoleAdmin, "")
	for i := 0; i < 12; i++ {
		env.seedUser(t, string(rune('a'+i))+"@example.com", models.RoleUser, "")
	}
	bearer := token(t, "admin@example.com")

	resp, body := doJSON(t, env.app, "GET", "/all-users?page=2&limit=5", bearer, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 13, body["total"])
	assert.Len(t, body["users"], 5)

	// Default page size is ten.
	resp, body = doJSON(t, env.app, "GET", "/all-users", bearer, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["users"], 10)

	// A page beyond the last is empty but still reports the total.
	resp, body = doJSON(t, env.app, "GET", "/all-users?page=5&limit=5", bearer, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 13, body["total"])
	assert.Len(t, body["users"], 0)
}

func TestAllUsersRequiresStaffRole(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "plain@example.com", models.RoleUser, "")

	resp, _ := doJSON(t, env.app, "GET", "/all-users", token(t, "plain@example.com"), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSearchDonorsIsPublic(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "donor@example.com", models.RoleDonor, "")
	donor2 := &models.User{Email: "donor2@example.com", Role: models.RoleDonor, Status: models.StatusActive, BloodGroup: "B+"}
	require.NoError(t, env.users.Create(t.Context(), donor2))
	env.seedUser(t, "plain@example.com", models.RoleUser, "")

	blocked := &models.User{Email: "blocked@example.com", Role: models.RoleDonor, Status: models.StatusBlocked}
	require.NoError(t, env.users.Create(t.Context(), blocked))

	resp, donors := doJSONList(t, env.app, "GET", "/search-users", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, donors, 2)

	resp, donors = doJSONList(t, env.app, "GET", "/search-users?bloodGroup=B%2B", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, donors, 1)
	assert.Equal(t, "donor2@example.com", donors[0]["email"])
}

func TestCreateDonationRequest(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@example.com", models.RoleUser, "")
	bearer := token(t, "alice@example.com")

	resp, body := doJSON(t, env.app, "POST", "/donation-requests", bearer, fiber.Map{
		"requesterEmail": "alice@example.com",
		"bloodGroup":     "O-",
		"donationDate":   "2026-09-01",
		"recipientName":  "Patient",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["insertedId"])

	// Required fields missing.
	resp, body = doJSON(t, env.app, "POST", "/donation-requests", bearer, fiber.Map{
		"requesterEmail": "alice@example.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing required fields.", body["message"])

	// Status is forced to pending no matter what the payload says.
	resp, body = doJSON(t, env.app, "POST", "/donation-requests", bearer, fiber.Map{
		"requesterEmail": "alice@example.com",
		"bloodGroup":     "O-",
		"donationDate":   "2026-09-02",
		"status":         "done",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, body = doJSON(t, env.app, "GET", "/donation-requests/"+body["insertedId"].(string), bearer, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.DonationPending, body["status"])
}

func TestRecentDonationRequests(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@example.com", models.RoleUser, "")
	for _, date := range []string{"2026-01-05", "2026-03-01", "2026-02-10", "2026-04-20", "2026-01-30"} {
		env.seedDonation(t, "alice@example.com", date, models.DonationPending)
	}
	env.seedDonation(t, "bob@example.com", "2026-05-01", models.DonationPending)

	resp, requests := doJSONList(t, env.app, "GET", "/donation-requests/recent/alice@example.com", token(t, "alice@example.com"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, requests, 3)
	assert.Equal(t, "2026-04-20", requests[0]["donationDate"])
	assert.Equal(t, "2026-03-01", requests[1]["donationDate"])
	assert.Equal(t, "2026-02-10", requests[2]["donationDate"])
}

func TestDonationListVisibility(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@example.com", models.RoleUser, "")
	env.seedUser(t, "admin@example.com", models.RoleAdmin, "")
	env.seedDonation(t, "alice@example.com", "2026-01-01", models.DonationPending)
	env.seedDonation(t, "alice@example.com", "2026-01-02", models.DonationDone)
	env.seedDonation(t, "bob@example.com", "2026-01-03", models.DonationPending)

	resp, body := doJSON(t, env.app, "GET", "/all-donations", token(t, "alice@example.com"), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["total"])

	resp, body = doJSON(t, env.app, "GET", "/all-donations", token(t, "admin@example.com"), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, body["total"])

	// Status filter layers on top of visibility; "all" removes it.
	resp, body = doJSON(t, env.app, "GET", "/all-donations?status=pending", token(t, "admin@example.com"), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["total"])

	resp, body = doJSON(t, env.app, "GET", "/all-donations?status=all", token(t, "admin@example.com"), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, body["total"])
}

func TestDonationUpdateOwnership(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@example.com", models.RoleUser, "")
	env.seedUser(t, "bob@example.com", models.RoleUser, "")
	env.seedUser(t, "admin@example.com", models.RoleAdmin, "")
	r := env.seedDonation(t, "alice@example.com", "2026-06-01", models.DonationPending)
	path := "/donation-requests/" + r.ID.String()

	// A stranger cannot edit someone else's request.
	resp, _ := doJSON(t, env.app, "PATCH", path, token(t, "bob@example.com"), fiber.Map{"hospitalName": "Evil General"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, body := doJSON(t, env.app, "PATCH", path, token(t, "alice@example.com"), fiber.Map{"hospitalName": "City General"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["modifiedCount"])

	// Re-sending identical values modifies nothing.
	resp, body = doJSON(t, env.app, "PATCH", path, token(t, "alice@example.com"), fiber.Map{"hospitalName": "City General"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["modifiedCount"])

	// Admins may edit any request.
	resp, body = doJSON(t, env.app, "PATCH", path, token(t, "admin@example.com"), fiber.Map{"hospitalName": "Central Hospital"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["modifiedCount"])
}

func TestDonationDelete(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@example.com", models.RoleUser, "")
	env.seedUser(t, "bob@example.com", models.RoleUser, "")
	r := env.seedDonation(t, "alice@example.com", "2026-06-01", models.DonationPending)
	path := "/donation-requests/" + r.ID.String()

	resp, _ := doJSON(t, env.app, "DELETE", path, token(t, "bob@example.com"), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, body := doJSON(t, env.app, "DELETE", path, token(t, "alice@example.com"), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["deletedCount"])

	resp, body = doJSON(t, env.app, "DELETE", path, token(t, "alice@example.com"), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Request not found", body["message"])
}

func TestDonationStatusUpdate(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "donor@example.com", models.RoleDonor, "")
	r := env.seedDonation(t, "alice@example.com", "2026-06-01", models.DonationPending)
	bearer := token(t, "donor@example.com")
	path := "/donations/update-status/" + r.ID.String()

	resp, body := doJSON(t, env.app, "PATCH", path, bearer, fiber.Map{
		"status":     models.DonationInProgress,
		"donorName":  "Donor",
		"donorEmail": "donor@example.com",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["modifiedCount"])

	resp, _ = doJSON(t, env.app, "PATCH", path, bearer, fiber.Map{"status": "teleported"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	missing := "/donations/update-status/00000000-0000-0000-0000-000000000001"
	resp, body = doJSON(t, env.app, "PATCH", missing, bearer, fiber.Map{"status": models.DonationDone})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Request not found", body["message"])
}

func TestPendingDonationsArePublic(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 6; i++ {
		env.seedDonation(t, "alice@example.com", "2026-07-0"+string(rune('1'+i)), models.DonationPending)
	}
	env.seedDonation(t, "alice@example.com", "2026-07-09", models.DonationDone)

	resp, body := doJSON(t, env.app, "GET", "/pending-donations", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 6, body["total"])
	// Default page size is five.
	assert.Len(t, body["donations"], 5)
}

func TestUnauthorizedRequestNeverReachesStore(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := doJSON(t, env.app, "GET", "/all-donations", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, env.donations.Calls())
	assert.Equal(t, 0, env.users.Calls())

	req := httptest.NewRequest("GET", "/all-donations", nil)
	req.Header.Set("Authorization", "Bearer bogus-token")
	invalidResp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, invalidResp.StatusCode)
	assert.Equal(t, 0, env.donations.Calls())
}

func TestBlogLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@example.com", models.RoleAdmin, "")
	adminTok := token(t, "admin@example.com")

	resp, body := doJSON(t, env.app, "POST", "/blogs", adminTok, fiber.Map{
		"title":   "Why donate",
		"content": "Blood saves lives.",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	blogID := body["insertedId"].(string)

	// Drafts are invisible on the public surface.
	resp, published := doJSONList(t, env.app, "GET", "/published-blogs", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, published)

	resp, body = doJSON(t, env.app, "GET", "/published-blogs/"+blogID, "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Blog not found or unpublished", body["message"])

	resp, body = doJSON(t, env.app, "PATCH", "/blogs/"+blogID+"/status", adminTok, fiber.Map{"status": models.BlogPublished})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Blog marked as published", body["message"])

	resp, published = doJSONList(t, env.app, "GET", "/published-blogs", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, published, 1)
	assert.Equal(t, "Why donate", published[0]["title"])

	resp, body = doJSON(t, env.app, "GET", "/published-blogs/"+blogID, "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Why donate", body["title"])

	resp, body = doJSON(t, env.app, "DELETE", "/blogs/"+blogID, adminTok, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Blog deleted successfully", body["message"])

	resp, _ = doJSON(t, env.app, "DELETE", "/blogs/"+blogID, adminTok, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBlogStatusRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@example.com", models.RoleAdmin, "")
	adminTok := token(t, "admin@example.com")

	resp, body := doJSON(t, env.app, "POST", "/blogs", adminTok, fiber.Map{
		"title":   "Draft post",
		"content": "Body",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	blogID := body["insertedId"].(string)

	before := env.blogs.Calls()
	resp, body = doJSON(t, env.app, "PATCH", "/blogs/"+blogID+"/status", adminTok, fiber.Map{"status": "sideways"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid status value", body["message"])
	// The bad value never reached the store and the post is untouched.
	assert.Equal(t, before, env.blogs.Calls())

	id, err := uuid.Parse(blogID)
	require.NoError(t, err)
	stored, ok := env.blogs.Get(id)
	require.True(t, ok)
	assert.Equal(t, models.BlogDraft, stored.Status)
}

func TestBlogListPagination(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@example.com", models.RoleAdmin, "")
	env.seedUser(t, "plain@example.com", models.RoleUser, "")
	adminTok := token(t, "admin@example.com")

	for i := 0; i < 8; i++ {
		resp, _ := doJSON(t, env.app, "POST", "/blogs", adminTok, fiber.Map{
			"title":   "Post " + string(rune('A'+i)),
			"content": "Body",
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, body := doJSON(t, env.app, "GET", "/blogs?skip=6&limit=6", adminTok, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 8, body["total"])
	assert.Len(t, body["blogs"], 2)

	// Default window.
	resp, body = doJSON(t, env.app, "GET", "/blogs", adminTok, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["blogs"], 6)

	// The editorial listing is staff only.
	resp, _ = doJSON(t, env.app, "GET", "/blogs", token(t, "plain@example.com"), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestLoginAndCounts(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@example.com", models.RoleAdmin, "s3cret-pass")
	env.seedDonation(t, "alice@example.com", "2026-01-01", models.DonationPending)

	resp, body := doJSON(t, env.app, "POST", "/auth/login", "", fiber.Map{
		"email":    "admin@example.com",
		"password": "s3cret-pass",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	access, ok := body["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, access)

	resp, _ = doJSON(t, env.app, "POST", "/auth/login", "", fiber.Map{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// The issued access token works against protected routes.
	resp, body = doJSON(t, env.app, "GET", "/all-users-count", access, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["count"])

	resp, body = doJSON(t, env.app, "GET", "/all-donation-count", access, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["count"])
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, body := doJSON(t, env.app, "GET", "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "not configured", body["db"])
}
