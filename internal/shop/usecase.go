package shop

import (
	"context"

	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/shop/dto"
)

type UseCase interface {
	CreateShopItem(ctx context.Context, input *dto.CreateShopItemInput) (*model.ShopItem, error)
	GetShopItem(ctx context.Context, id string) (*model.ShopItem, error)
	UpdateShopItem(ctx context.Context, input *dto.UpdateShopItemInput) (*model.ShopItem, error)
	ChangeStatus(ctx context.Context, input *dto.ChangeStatusInput) (*model.ShopItem, error)
	DeleteShopItem(ctx context.Context, id string) error
}
