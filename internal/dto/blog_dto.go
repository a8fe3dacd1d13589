package dto

type CreateBlogRequest struct {
	Title     string `json:"title" validate:"required"`
	Thumbnail string `json:"thumbnail"`
	Content   string `json:"content" validate:"required"`
}

type UpdateBlogStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
