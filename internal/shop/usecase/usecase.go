package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fekuna/gardentrack/internal/auth"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/shop"
	"github.com/fekuna/gardentrack/internal/shop/dto"
	"go.uber.org/zap"
)

type shopUseCase struct {
	repo   shop.Repository
	logger logger.ZapLogger
}

func NewShopUseCase(repo shop.Repository, log logger.ZapLogger) shop.UseCase {
	return &shopUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *shopUseCase) CreateShopItem(ctx context.Context, input *dto.CreateShopItemInput) (*model.ShopItem, error) {
	name, price, err := validateListing(input.Name, input.Price, input.Quantity)
	if err != nil {
		return nil, err
	}
	category, err := categoryOrDefault(input.Category)
	if err != nil {
		return nil, err
	}

	created := uc.repo.AddShopItem(model.ShopItem{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Category:    category,
		Price:       price,
		Currency:    dto.DefaultCurrency,
		Quantity:    input.Quantity,
		Status:      model.StatusInStock,
		ImageURL:    input.ImageURL,
		CreatedAt:   model.Today(),
	})

	uc.logger.Info("shop item created",
		zap.String("id", created.ID),
		zap.String("name", created.Name),
		zap.Float64("price", created.Price),
		zap.String("actor", auth.Actor(ctx)),
	)
	return &created, nil
}

func (uc *shopUseCase) GetShopItem(ctx context.Context, id string) (*model.ShopItem, error) {
	item, ok := uc.repo.ShopItem(id)
	if !ok {
		return nil, fmt.Errorf("shop item %q: %w", id, model.ErrNotFound)
	}
	return &item, nil
}

// UpdateShopItem replaces every editable field. Currency and creation date
// are kept from the stored item.
func (uc *shopUseCase) UpdateShopItem(ctx context.Context, input *dto.UpdateShopItemInput) (*model.ShopItem, error) {
	item, ok := uc.repo.ShopItem(input.ID)
	if !ok {
		return nil, fmt.Errorf("shop item %q: %w", input.ID, model.ErrNotFound)
	}

	name, price, err := validateListing(input.Name, input.Price, input.Quantity)
	if err != nil {
		return nil, err
	}
	category, err := categoryOrDefault(input.Category)
	if err != nil {
		return nil, err
	}
	if !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", model.ErrValidation, input.Status)
	}

	var salePercent *float64
	if input.Status == model.StatusSale {
		pct := model.DefaultSalePercent
		if input.SalePercent != nil {
			if !model.ValidSalePercent(*input.SalePercent) {
				return nil, fmt.Errorf("%w: sale percent must be above 0 and at most 100", model.ErrValidation)
			}
			pct = *input.SalePercent
		}
		salePercent = &pct
	}

	item.Name = name
	item.Description = strings.TrimSpace(input.Description)
	item.Category = category
	item.Price = price
	item.Quantity = input.Quantity
	item.Status = input.Status
	item.SalePercent = salePercent
	item.ImageURL = input.ImageURL
	uc.repo.UpdateShopItem(item)

	uc.logger.Info("shop item updated", zap.String("id", item.ID), zap.String("actor", auth.Actor(ctx)))
	return &item, nil
}

// ChangeStatus moves an item between in-stock, sale and out-of-stock. The
// discount rules live in the store.
func (uc *shopUseCase) ChangeStatus(ctx context.Context, input *dto.ChangeStatusInput) (*model.ShopItem, error) {
	if !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", model.ErrValidation, input.Status)
	}
	if _, ok := uc.repo.ShopItem(input.ID); !ok {
		return nil, fmt.Errorf("shop item %q: %w", input.ID, model.ErrNotFound)
	}

	uc.repo.UpdateShopItemStatus(input.ID, input.Status, input.SalePercent)

	item, _ := uc.repo.ShopItem(input.ID)
	fields := []zap.Field{
		zap.String("id", item.ID),
		zap.String("status", string(item.Status)),
		zap.String("actor", auth.Actor(ctx)),
	}
	if item.SalePercent != nil {
		fields = append(fields, zap.Float64("sale_percent", *item.SalePercent))
	}
	uc.logger.Info("shop item status changed", fields...)
	return &item, nil
}

func (uc *shopUseCase) DeleteShopItem(ctx context.Context, id string) error {
	if _, ok := uc.repo.ShopItem(id); !ok {
		return fmt.Errorf("shop item %q: %w", id, model.ErrNotFound)
	}
	uc.repo.RemoveShopItem(id)

	uc.logger.Info("shop item removed", zap.String("id", id), zap.String("actor", auth.Actor(ctx)))
	return nil
}

func validateListing(rawName string, price *float64, quantity int) (string, float64, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return "", 0, fmt.Errorf("%w: item name is required", model.ErrValidation)
	}
	if price == nil {
		return "", 0, fmt.Errorf("%w: price is required", model.ErrValidation)
	}
	if math.IsNaN(*price) || math.IsInf(*price, 0) || *price < 0 {
		return "", 0, fmt.Errorf("%w: price must be zero or more", model.ErrValidation)
	}
	if quantity < 0 {
		return "", 0, fmt.Errorf("%w: quantity must be zero or more", model.ErrValidation)
	}
	return name, *price, nil
}

func categoryOrDefault(c model.ShopCategory) (model.ShopCategory, error) {
	if c == "" {
		return model.CategoryProduce, nil
	}
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unknown category %q", model.ErrValidation, c)
	}
	return c, nil
}
