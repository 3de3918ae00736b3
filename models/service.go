package models

// Service is a catalog entry. Deactivating a service hides it from new
// selection lists; appointments and bills that already reference it keep
// their snapshot of its name and price.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // in minutes
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"isActive"`
}
