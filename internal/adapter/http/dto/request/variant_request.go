package request

// VariantRequest is the POST /variants payload. PriceDelta is a pointer
// so a zero delta ("Normal" finish) binds.
type VariantRequest struct {
	Name       string   `json:"name" binding:"required"`
	PriceDelta *float64 `json:"price_delta" binding:"required,gte=0"`
}
