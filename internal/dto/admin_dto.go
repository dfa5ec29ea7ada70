package dto

type RegisterAdminRequest struct {
	FirstName string `json:"firstname" form:"firstname" validate:"required,min=3,max=100"`
	LastName  string `json:"lastname" form:"lastname" validate:"required,min=3,max=100"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required,min=8,max=20"`
	Mobile    string `json:"mobile" form:"mobile" validate:"required,mobile"`
}

type ApproveVendorRequest struct {
	Decision string `json:"decision" form:"decision" validate:"required,oneof=approve reject"`
}
