package shop

import (
	"github.com/fekuna/gardentrack/internal/model"
)

type Repository interface {
	AddShopItem(item model.ShopItem) model.ShopItem
	RemoveShopItem(id string)
	UpdateShopItem(item model.ShopItem)
	UpdateShopItemStatus(id string, status model.ShopStatus, salePercent *float64)
	ShopItem(id string) (model.ShopItem, bool)
}
