package request

// FurnitureItemRequest is the payload for item creation (POST) and full
// update (PUT). BasePrice and Stock are pointers so that zero is a valid
// submitted value; gte=0 keeps negatives out at the boundary.
type FurnitureItemRequest struct {
	Name      string   `json:"name" binding:"required"`
	Type      string   `json:"type" binding:"required"`
	Material  string   `json:"material" binding:"required"`
	BasePrice *float64 `json:"base_price" binding:"required,gte=0"`
	Stock     *int     `json:"stock" binding:"required,gte=0"`
	Size      string   `json:"size" binding:"required"`
}

// FurniturePatchRequest is the PATCH payload; absent fields stay as they
// are.
type FurniturePatchRequest struct {
	Name      *string  `json:"name"`
	Type      *string  `json:"type"`
	Material  *string  `json:"material"`
	BasePrice *float64 `json:"base_price" binding:"omitempty,gte=0"`
	Stock     *int     `json:"stock" binding:"omitempty,gte=0"`
	Size      *string  `json:"size"`
}
