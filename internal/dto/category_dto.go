package dto

type SaveCategoryRequest struct {
	Name string `json:"name" form:"name" validate:"required,min=3,max=191"`
}
