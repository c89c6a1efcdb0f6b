package entity

// StoreProfile holds the store identity stamped onto receipts. It is seeded
// from configuration on first run and rarely changes afterwards.
type StoreProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Cashier string `json:"cashier"`
}
