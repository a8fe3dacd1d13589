package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/authctx"
	"github.com/lifeline-connect/lifeline-backend/internal/dto"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/query"
	"github.com/lifeline-connect/lifeline-backend/internal/services"
)

type DonationHandler struct {
	donations *services.DonationService
	roles     *services.UserService
}

func NewDonationHandler(donations *services.DonationService, roles *services.UserService) *DonationHandler {
	return &DonationHandler{donations: donations, roles: roles}
}

// Create submits a donation request. requesterEmail, bloodGroup and
// donationDate are mandatory.
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing required fields.",
		})
	}

	request := models.DonationRequest{
		RequesterEmail:    req.RequesterEmail,
		RequesterName:     req.RequesterName,
		RecipientName:     req.RecipientName,
		RecipientDistrict: req.RecipientDistrict,
		RecipientUpazila:  req.RecipientUpazila,
		Hospital:          req.Hospital,
		FullAddress:       req.FullAddress,
		BloodGroup:        req.BloodGroup,
		DonationDate:      req.DonationDate,
		DonationTime:      req.DonationTime,
		RequestMessage:    req.RequestMessage,
	}

	if err := h.donations.Create(c.UserContext(), &request); err != nil {
		slog.Error("failed to create donation request", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create donation request.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Donation request submitted successfully!",
		"insertedId": request.ID,
	})
}

// Recent returns the three most recent requests by a requester, newest
// donation date first.
func (h *DonationHandler) Recent(c *fiber.Ctx) error {
	requests, err := h.donations.Recent(c.UserContext(), c.Params("email"))
	if err != nil {
		slog.Error("failed to fetch recent donation requests", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal Server Error",
		})
	}
	return c.JSON(requests)
}

func (h *DonationHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID",
		})
	}

	request, err := h.donations.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Request not found",
			})
		}
		slog.Error("failed to fetch donation request", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal Server Error",
		})
	}
	return c.JSON(request)
}

// Update edits a request's fields. Only the requester or an admin may
// edit; the ownership check runs against the verified identity.
func (h *DonationHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID",
		})
	}

	var req dto.UpdateDonationRequest
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

	email, role, err := h.caller(c)
	if err != nil {
		return unauthorized(c)
	}

	res, err := h.donations.Update(c.UserContext(), email, role, id, fields)
	if err != nil {
		return h.mutationError(c, err, "Failed to update donation request")
	}
	return c.JSON(fiber.Map{"modifiedCount": res.Modified})
}

// UpdateStatus moves a request through its lifecycle and records the
// fulfilling donor when supplied.
func (h *DonationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID",
		})
	}

	var req dto.UpdateDonationStatusRequest
	if err := c.BodyParser(&req); err != nil || dto.Validate(&req) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Status is required",
		})
	}

	res, err := h.donations.UpdateStatus(c.UserContext(), id, req.Status, req.DonorName, req.DonorEmail)
	if err != nil {
		return h.mutationError(c, err, "Failed to update donation request")
	}
	if res.Matched == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Request not found",
		})
	}
	return c.JSON(fiber.Map{"modifiedCount": res.Modified})
}

func (h *DonationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID",
		})
	}

	email, role, err := h.caller(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.donations.Delete(c.UserContext(), email, role, id); err != nil {
		return h.mutationError(c, err, "Failed to delete donation request")
	}
	return c.JSON(fiber.Map{"deletedCount": 1})
}

// List pages through donation requests visible to the caller: their own
// by default, everything for admins and volunteers.
func (h *DonationHandler) List(c *fiber.Ctx) error {
	email, role, err := h.caller(c)
	if err != nil {
		return unauthorized(c)
	}

	p := query.PageWindow(c.QueryInt("page", 1), c.QueryInt("limit", 0), query.DefaultDonationLimit)
	requests, total, err := h.donations.List(c.UserContext(), email, role, c.Query("status"), p)
	if err != nil {
		slog.Error("failed to list donation requests", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch donation requests",
		})
	}
	return c.JSON(fiber.Map{"donations": requests, "total": total})
}

// Pending is the public page of requests still waiting for a donor.
func (h *DonationHandler) Pending(c *fiber.Ctx) error {
	p := query.PageWindow(c.QueryInt("page", 1), c.QueryInt("limit", 0), query.DefaultPendingLimit)

	requests, total, err := h.donations.Pending(c.UserContext(), p)
	if err != nil {
		slog.Error("failed to list pending donation requests", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch pending donations",
		})
	}
	return c.JSON(fiber.Map{"donations": requests, "total": total})
}

func (h *DonationHandler) Count(c *fiber.Ctx) error {
	count, err := h.donations.Count(c.UserContext())
	if err != nil {
		slog.Error("failed to count donation requests", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to count donations",
		})
	}
	return c.JSON(fiber.Map{"count": count})
}

// caller returns the verified email plus a freshly resolved role.
func (h *DonationHandler) caller(c *fiber.Ctx) (string, string, error) {
	email, err := authctx.Email(c)
	if err != nil {
		return "", "", err
	}
	return email, h.roles.ResolveRole(c.UserContext(), email), nil
}

func (h *DonationHandler) mutationError(c *fiber.Ctx, err error, generic string) error {
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Request not found",
		})
	case errors.Is(err, services.ErrNotRequester):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Forbidden",
		})
	case errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid status value",
		})
	default:
		slog.Error("donation request mutation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: generic,
		})
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
