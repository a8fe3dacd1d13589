package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/dto"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/query"
	"github.com/lifeline-connect/lifeline-backend/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register stores a new user profile. Public: this is the first thing a
// fresh account does.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "A valid email is required",
		})
	}

	user := models.User{
		Email:      req.Email,
		Name:       req.Name,
		Avatar:     req.Avatar,
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
		Role:       models.RoleUser,
		Status:     models.StatusActive,
	}

	if err := h.users.Register(c.UserContext(), &user, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "User already exists",
			})
		}
		slog.Error("failed to store user", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "User stored successfully",
		"insertedId": user.ID,
	})
}

// GetRole reports the stored role for an email, defaulting to "user"
// for identities that have not registered yet.
func (h *UserHandler) GetRole(c *fiber.Ctx) error {
	role := h.users.ResolveRole(c.UserContext(), c.Params("email"))
	return c.JSON(dto.RoleResponse{Role: role})
}

func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	user, err := h.users.GetByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		slog.Error("failed to fetch user", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch user",
		})
	}
	return c.JSON(user)
}

// UpdateProfile merges the supplied profile fields into the account.
// The payload cannot carry the primary key, so it can never be
// overwritten.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No updatable fields in request",
		})
	}

	res, err := h.users.UpdateProfile(c.UserContext(), c.Params("email"), fields)
	if err != nil {
		slog.Error("failed to update user", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update user",
		})
	}
	if res.Matched == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}
	return c.JSON(res)
}

// SetStatus blocks or unblocks an account by id.
func (h *UserHandler) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil || dto.Validate(&req) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Status is required",
		})
	}

	res, err := h.users.SetStatus(c.UserContext(), id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid status value",
			})
		}
		slog.Error("failed to update user status", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update user status",
		})
	}
	if res.Matched == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}
	return c.JSON(res)
}

// SetRole promotes or demotes an account by id.
func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil || dto.Validate(&req) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Role is required",
		})
	}

	res, err := h.users.SetRole(c.UserContext(), id, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid role value",
			})
		}
		slog.Error("failed to update user role", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update user role",
		})
	}
	if res.Matched == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}
	return c.JSON(res)
}

// List returns a page of users with an optional status filter.
func (h *UserHandler) List(c *fiber.Ctx) error {
	p := query.PageWindow(c.QueryInt("page", 1), c.QueryInt("limit", 0), query.DefaultUserLimit)

	users, total, err := h.users.List(c.UserContext(), c.Query("status"), p)
	if err != nil {
		slog.Error("failed to list users", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch users",
		})
	}
	return c.JSON(fiber.Map{"users": users, "total": total})
}

// SearchDonors is the public donor directory: active donors only, with
// optional blood group and location filters.
func (h *UserHandler) SearchDonors(c *fiber.Ctx) error {
	donors, err := h.users.SearchDonors(c.UserContext(), query.DonorSearch{
		BloodGroup: c.Query("bloodGroup"),
		District:   c.Query("district"),
		Upazila:    c.Query("upazila"),
	})
	if err != nil {
		slog.Error("failed to search donors", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal Server Error",
		})
	}
	return c.JSON(donors)
}

func (h *UserHandler) Count(c *fiber.Ctx) error {
	count, err := h.users.Count(c.UserContext())
	if err != nil {
		slog.Error("failed to count users", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to count users",
		})
	}
	return c.JSON(fiber.Map{"count": count})
}
