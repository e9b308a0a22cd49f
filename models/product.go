package models

// Product is one saree in the catalog. The JSON field names match the
// document layout of the file-backed store, so the same struct is
// persisted to disk, stored in Postgres and sent over the wire.
type Product struct {
	ID          int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Description string  `json:"description"`
	Image       string  `json:"image" gorm:"not null"`
	Category    string  `json:"category" gorm:"index"`
}

// Categories lists the known saree categories. Extend here when the
// shop picks up a new line.
var Categories = []string{"Silk", "Cotton", "Designer", "Traditional"}

// AllCategories is the wildcard value accepted by catalog filtering.
const AllCategories = "All"

func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
