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

type BlogHandler struct {
	blogs *services.BlogService
}

func NewBlogHandler(blogs *services.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

// Create stores a new post in draft state.
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Title and content are required",
		})
	}

	blog := models.Blog{
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
		Content:   req.Content,
	}
	if err := h.blogs.Create(c.UserContext(), &blog); err != nil {
		slog.Error("failed to create blog", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create blog",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Blog created",
		"insertedId": blog.ID,
	})
}

// Published lists published posts, newest first. Public.
func (h *BlogHandler) Published(c *fiber.Ctx) error {
	blogs, err := h.blogs.Published(c.UserContext())
	if err != nil {
		slog.Error("failed to fetch published blogs", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal Server Error",
		})
	}
	return c.JSON(blogs)
}

// PublishedByID fetches a single published post. Drafts are invisible
// here regardless of who asks.
func (h *BlogHandler) PublishedByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid blog ID",
		})
	}

	blog, err := h.blogs.PublishedByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Blog not found or unpublished",
			})
		}
		slog.Error("failed to fetch blog", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal Server Error",
		})
	}
	return c.JSON(blog)
}

// List pages through posts of any status for the editorial dashboard.
func (h *BlogHandler) List(c *fiber.Ctx) error {
	p := query.SkipWindow(c.QueryInt("skip", 0), c.QueryInt("limit", 0), query.DefaultBlogLimit)

	blogs, total, err := h.blogs.List(c.UserContext(), c.Query("status"), p)
	if err != nil {
		slog.Error("failed to list blogs", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch blogs",
		})
	}
	return c.JSON(fiber.Map{"blogs": blogs, "total": total})
}

// SetStatus publishes or unpublishes a post. Any value other than draft
// or published is rejected before the store is touched.
func (h *BlogHandler) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid blog ID",
		})
	}

	var req dto.UpdateBlogStatusRequest
	if err := c.BodyParser(&req); err != nil || dto.Validate(&req) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Status is required",
		})
	}

	_, err = h.blogs.SetStatus(c.UserContext(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid status value",
			})
		case errors.Is(err, services.ErrBlogNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Blog not found",
			})
		default:
			slog.Error("failed to update blog status", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
	}
	return c.JSON(fiber.Map{"message": "Blog marked as " + req.Status})
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid blog ID",
		})
	}

	if err := h.blogs.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Blog not found",
			})
		}
		slog.Error("failed to delete blog", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"message": "Blog deleted successfully"})
}
