package model

import (
	"math"
	"time"
)

type ShopCategory string

const (
	CategoryProduce   ShopCategory = "produce"
	CategorySeedlings ShopCategory = "seedlings"
	CategoryInputs    ShopCategory = "inputs"
)

var ShopCategories = []ShopCategory{CategoryProduce, CategorySeedlings, CategoryInputs}

func (c ShopCategory) IsValid() bool {
	switch c {
	case CategoryProduce, CategorySeedlings, CategoryInputs:
		return true
	}
	return false
}

func (c ShopCategory) Label() string {
	switch c {
	case CategoryProduce:
		return "Produce"
	case CategorySeedlings:
		return "Seedlings"
	case CategoryInputs:
		return "Inputs"
	}
	return string(c)
}

type ShopStatus string

const (
	StatusInStock    ShopStatus = "in-stock"
	StatusSale       ShopStatus = "sale"
	StatusOutOfStock ShopStatus = "out-of-stock"
)

var ShopStatuses = []ShopStatus{StatusInStock, StatusSale, StatusOutOfStock}

func (s ShopStatus) IsValid() bool {
	switch s {
	case StatusInStock, StatusSale, StatusOutOfStock:
		return true
	}
	return false
}

func (s ShopStatus) Label() string {
	switch s {
	case StatusInStock:
		return "In Stock"
	case StatusSale:
		return "Sale"
	case StatusOutOfStock:
		return "Out of Stock"
	}
	return string(s)
}

// DefaultSalePercent applies when an item goes on sale without a usable discount.
const DefaultSalePercent = 10.0

type ShopItem struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Category    ShopCategory `json:"category" yaml:"category"`
	Price       float64      `json:"price" yaml:"price"`
	Currency    string       `json:"currency" yaml:"currency"`
	Quantity    int          `json:"quantity" yaml:"quantity"`
	Status      ShopStatus   `json:"status" yaml:"status"`
	SalePercent *float64     `json:"sale_percent,omitempty" yaml:"sale_percent,omitempty"` // only set while Status is sale
	ImageURL    *string      `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	CreatedAt   time.Time    `json:"created_at" yaml:"created_at"`
}

// SalePrice returns the discounted price and true when the item is on sale
// with a discount set.
func (i ShopItem) SalePrice() (float64, bool) {
	switch i.Status {
	case StatusSale:
		if i.SalePercent == nil {
			return 0, false
		}
		return i.Price * (1 - *i.SalePercent/100), true
	case StatusInStock, StatusOutOfStock:
		return 0, false
	}
	return 0, false
}

// ValidSalePercent reports whether p can be used as a discount.
func ValidSalePercent(p float64) bool {
	return !math.IsNaN(p) && p > 0 && p <= 100
}
