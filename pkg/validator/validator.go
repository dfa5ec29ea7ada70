package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vendorhub/rfp-backend/pkg/apperror"
)

var (
	mobileRegex  = regexp.MustCompile(`^[0-9]{10}$`)
	pancardRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstRegex     = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	// Last 3 years revenue, comma-separated.
	revenueRegex = regexp.MustCompile(`^[0-9]+,[0-9]+,[0-9]+$`)
	dateRegex    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	must(v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobileRegex.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("pancard", func(fl validator.FieldLevel) bool {
		return pancardRegex.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("gstno", func(fl validator.FieldLevel) bool {
		return gstRegex.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("revenue3", func(fl validator.FieldLevel) bool {
		return revenueRegex.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("dateymd", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !dateRegex.MatchString(s) {
			return false
		}
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	}))
	// Format failures are reported by dateymd; this rule only fires on
	// a parseable date that lies before today.
	must(v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		d, err := time.Parse("2006-01-02", fl.Field().String())
		if err != nil {
			return true
		}
		today := time.Now().Truncate(24 * time.Hour)
		return !d.Before(today)
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Struct validates s and returns a ValidationError carrying every violated
// rule as a human-readable message, or nil when s is valid.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewValidation(err.Error())
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return apperror.NewValidation(messages...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FirstName":
		if fe.Tag() == "required" {
			return "First name is required"
		}
		return "First name must be between 3 and 100 characters"
	case "LastName":
		if fe.Tag() == "required" {
			return "Last name is required"
		}
		return "Last name must be between 3 and 100 characters"
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Email must be a valid format"
	case "Password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		return "Password must be between 8 and 20 characters"
	case "OldPassword":
		if fe.Tag() == "required" {
			return "Old password is required"
		}
		return "Old password must be between 8 and 20 characters"
	case "NewPassword":
		if fe.Tag() == "required" {
			return "New password is required"
		}
		return "New password must be between 8 and 20 characters"
	case "Mobile":
		if fe.Tag() == "required" {
			return "Mobile is required"
		}
		return "Mobile must be a 10 digit number"
	case "OTP":
		if fe.Tag() == "required" {
			return "OTP is required"
		}
		return "OTP must be 6 digits"
	case "NoOfEmployees":
		if fe.Tag() == "required" {
			return "No of employees is required"
		}
		return "No of employees must be a valid number"
	case "Revenue":
		if fe.Tag() == "required" {
			return "Revenue is required"
		}
		return "Revenue must be a valid format"
	case "PancardNo":
		if fe.Tag() == "required" {
			return "Pancard number is required"
		}
		return "Pancard number must be a valid format"
	case "GstNo":
		if fe.Tag() == "required" {
			return "GST number is required"
		}
		return "GST number must be a valid format"
	case "Name":
		return "Name is required and must be between 3 and 191 characters"
	case "ItemName":
		if fe.Tag() == "required" {
			return "Item name is required"
		}
		return "Item name must be between 3 and 255 characters"
	case "RFPNo":
		if fe.Tag() == "required" {
			return "RFP number is required"
		}
		return "RFP number must be less than 50 characters"
	case "ItemDescription":
		return "Item description must be less than 1000 characters"
	case "Quantity":
		return "Quantity must be greater than 0"
	case "LastDate":
		switch fe.Tag() {
		case "required":
			return "Last date is required"
		case "dateymd":
			return "Last date must be in YYYY-MM-DD format"
		default:
			return "Last date must not be in the past"
		}
	case "MinimumPrice":
		return "Minimum price must be greater than or equal to 0"
	case "MaximumPrice":
		if fe.Tag() == "gtefield" {
			return "Maximum price must be greater than minimum price"
		}
		return "Maximum price must be greater than or equal to 0"
	case "Categories":
		return "Categories are required"
	case "Vendors":
		return "Vendors are required"
	case "ItemPrice":
		if fe.Tag() == "required" {
			return "Item price is required"
		}
		return "Invalid item price"
	case "Decision":
		return "Decision must be approve or reject"
	default:
		return fe.Field() + " is invalid"
	}
}
