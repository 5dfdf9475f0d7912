package models

// Category groups products in the catalog.
type Category struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(64)" validate:"required"`
	Name         string `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Color        string `json:"color" gorm:"type:varchar(32)"`
	ProductCount int    `json:"product_count" validate:"gte=0"` // Denormalized, checked at load time
	Position     int    `json:"-" gorm:"index"`
}

// Brand identifies a product manufacturer.
type Brand struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(64)" validate:"required"`
	Name     string `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Position int    `json:"-" gorm:"index"`
}
