package request

// QuotationLineRequest is one requested line: which item, which finish
// variant and how many units.
type QuotationLineRequest struct {
	FurnitureID string `json:"furniture_id" binding:"required"`
	VariantID   string `json:"variant_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

// QuotationRequest is the POST /quotations payload.
type QuotationRequest struct {
	Lines []QuotationLineRequest `json:"lines" binding:"required,min=1,dive"`
}
