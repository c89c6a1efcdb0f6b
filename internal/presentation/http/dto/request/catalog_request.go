package request

// CreateCategoryRequest represents a category creation request.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Color string `json:"color" binding:"omitempty,max=32"`
}

// CreateItemRequest represents an item creation request. Description and
// stock are optional; empty values are stored as absent.
type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	Description string  `json:"description" binding:"omitempty,max=1000"`
	Stock       int     `json:"stock" binding:"omitempty,min=0"`
}

// ItemFilterRequest represents item listing filter parameters.
type ItemFilterRequest struct {
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
}
