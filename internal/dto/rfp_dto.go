package dto

// SaveRFPRequest carries the full field set of both create and update, which
// share one validation pipeline. Categories and Vendors are comma-separated
// id lists.
type SaveRFPRequest struct {
	ItemName        string  `json:"item_name" form:"item_name" validate:"required,min=3,max=255"`
	RFPNo           string  `json:"rfp_no" form:"rfp_no" validate:"required,max=50"`
	ItemDescription string  `json:"item_description" form:"item_description" validate:"omitempty,max=1000"`
	Quantity        int     `json:"quantity" form:"quantity" validate:"min=1"`
	LastDate        string  `json:"last_date" form:"last_date" validate:"required,dateymd,futuredate"`
	MinimumPrice    float64 `json:"minimum_price" form:"minimum_price" validate:"gte=0"`
	MaximumPrice    float64 `json:"maximum_price" form:"maximum_price" validate:"gte=0,gtefield=MinimumPrice"`
	Categories      string  `json:"categories" form:"categories" validate:"required"`
	Vendors         string  `json:"vendors" form:"vendors" validate:"required"`
}

type ApplyQuoteRequest struct {
	ItemPrice *float64 `json:"item_price" form:"item_price" validate:"required,gte=0"`
	TotalCost *float64 `json:"total_cost" form:"total_cost" validate:"omitempty,gte=0"`
}

// RFPResponse flattens an RFP with its association ids comma-joined.
type RFPResponse struct {
	RFPID           uint    `json:"rfp_id"`
	AdminID         uint    `json:"admin_id"`
	ItemName        string  `json:"item_name"`
	ItemDescription string  `json:"item_description"`
	RFPNo           string  `json:"rfp_no"`
	Quantity        int     `json:"quantity"`
	LastDate        string  `json:"last_date"`
	MinimumPrice    float64 `json:"minimum_price"`
	MaximumPrice    float64 `json:"maximum_price"`
	Categories      string  `json:"categories"`
	Vendors         string  `json:"vendors"`
	Status          string  `json:"status"`
}

// QuoteResponse is one vendor's quote row with contact details joined in.
type QuoteResponse struct {
	VendorID  uint     `json:"vendor_id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Mobile    string   `json:"mobile"`
	ItemPrice *float64 `json:"item_price"`
	TotalCost *float64 `json:"total_cost"`
}

// VendorRFPResponse is an RFP as seen by one invited vendor, annotated with
// that vendor's own quote state.
type VendorRFPResponse struct {
	RFPResponse
	VendorID      uint     `json:"vendor_id"`
	ItemPrice     *float64 `json:"item_price"`
	TotalCost     *float64 `json:"total_cost"`
	AppliedStatus string   `json:"applied_status"`
	RFPStatus     string   `json:"rfp_status"`
}
