package models

import (
	"database/sql"
	"time"
)

type Product struct {
	ProductID    string         `db:"product_id" json:"product_id"`
	Name         string         `db:"name" json:"name"`
	Description  string         `db:"description" json:"description"`
	Price        int64          `db:"price" json:"price"`
	ComparePrice sql.NullInt64  `db:"compare_price" json:"compare_price,omitempty"`
	Stock        int            `db:"stock" json:"stock"`
	Category     string         `db:"category" json:"category"`
	ImageURL     sql.NullString `db:"image_url" json:"image_url,omitempty"`
	RetailerID   sql.NullString `db:"retailer_id" json:"retailer_id,omitempty"`
	IsBestseller bool           `db:"is_bestseller" json:"is_bestseller"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// InStock is derived from stock.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// DiscountPercent is the saving against the compare price, 0 when none.
func (p *Product) DiscountPercent() int {
	if !p.ComparePrice.Valid || p.ComparePrice.Int64 <= p.Price || p.ComparePrice.Int64 == 0 {
		return 0
	}
	return int((p.ComparePrice.Int64 - p.Price) * 100 / p.ComparePrice.Int64)
}

type ProductFilter struct {
	Category   string
	Search     string
	InStock    *bool
	Bestseller bool
	Active     *bool
	Limit      int
	Offset     int
}

// ProductInput is the create/update payload from the dashboard.
type ProductInput struct {
	ProductID    string `json:"product_id" validate:"omitempty,max=64"`
	Name         string `json:"name" validate:"required,max=200"`
	Description  string `json:"description" validate:"max=2000"`
	Price        int64  `json:"price" validate:"gt=0"`
	ComparePrice int64  `json:"compare_price" validate:"gte=0"`
	Stock        int    `json:"stock" validate:"gte=0"`
	Category     string `json:"category" validate:"required,max=64"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
	RetailerID   string `json:"retailer_id" validate:"max=64"`
	IsBestseller bool   `json:"is_bestseller"`
}

// Categories shown in the jewellery menu, in display order.
var Categories = []Category{
	{ID: "earrings", Title: "Earrings", Description: "Studs, jhumkas and hoops"},
	{ID: "necklaces", Title: "Necklaces", Description: "Chokers, pendants and sets"},
	{ID: "bracelets", Title: "Bracelets", Description: "Bangles, kadas and chains"},
	{ID: "rings", Title: "Rings", Description: "Adjustable and statement rings"},
	{ID: "anklets", Title: "Anklets", Description: "Payal and chain anklets"},
	{ID: "sets", Title: "Jewellery Sets", Description: "Bridal and party sets"},
}

type Category struct {
	ID          string
	Title       string
	Description string
}

// CategoryByID returns the category with the given id.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
