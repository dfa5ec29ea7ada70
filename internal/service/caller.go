package service

import "github.com/vendorhub/rfp-backend/internal/model"

// Caller is the authenticated identity a workflow operation acts for,
// resolved from the request token by the auth middleware.
type Caller struct {
	ID   uint
	Type model.UserType
}

func (c Caller) IsAdmin() bool  { return c.Type == model.UserTypeAdmin }
func (c Caller) IsVendor() bool { return c.Type == model.UserTypeVendor }
