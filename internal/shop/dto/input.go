package dto

import "github.com/fekuna/gardentrack/internal/model"

const DefaultCurrency = "USD"

type CreateShopItemInput struct {
	Name        string
	Description string
	Category    model.ShopCategory // empty means produce
	Price       *float64           // required
	Quantity    int
	ImageURL    *string
}

// UpdateShopItemInput carries every editable field; the stored item is
// replaced with it.
type UpdateShopItemInput struct {
	ID          string
	Name        string
	Description string
	Category    model.ShopCategory
	Price       *float64
	Quantity    int
	Status      model.ShopStatus
	SalePercent *float64
	ImageURL    *string
}

type ChangeStatusInput struct {
	ID          string
	Status      model.ShopStatus
	SalePercent *float64 // used only for sale; nil or unusable means the default
}
