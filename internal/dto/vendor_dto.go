package dto

type RegisterVendorRequest struct {
	FirstName     string `json:"firstname" form:"firstname" validate:"required,min=3,max=100"`
	LastName      string `json:"lastname" form:"lastname" validate:"required,min=3,max=100"`
	Email         string `json:"email" form:"email" validate:"required,email"`
	Password      string `json:"password" form:"password" validate:"required,min=8,max=20"`
	Mobile        string `json:"mobile" form:"mobile" validate:"required,mobile"`
	NoOfEmployees string `json:"no_of_employees" form:"no_of_employees" validate:"required,max=50,number"`
	Revenue       string `json:"revenue" form:"revenue" validate:"required,max=255,revenue3"`
	PancardNo     string `json:"pancard_no" form:"pancard_no" validate:"required,pancard"`
	GstNo         string `json:"gst_no" form:"gst_no" validate:"required,gstno"`
	Categories    string `json:"category" form:"category" validate:"required"`
}

// VendorListItem is the joined projection an admin sees in vendor listings.
type VendorListItem struct {
	UserID        uint   `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
	NoOfEmployees string `json:"no_of_employees"`
	Status        string `json:"status"`
	Categories    string `json:"categories"`
}
