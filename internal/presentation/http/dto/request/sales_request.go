package request

// SalesHistoryRequest represents history listing parameters. Date filters
// to one calendar day ("2006-01-02"); sort_by is "date" or "total".
type SalesHistoryRequest struct {
	Date    string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=date total"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// UpdateSettingsRequest replaces the store profile.
type UpdateSettingsRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Address string `json:"address" binding:"omitempty,max=500"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Cashier string `json:"cashier" binding:"omitempty,max=255"`
}
