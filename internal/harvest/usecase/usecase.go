package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fekuna/gardentrack/internal/auth"
	"github.com/fekuna/gardentrack/internal/harvest"
	"github.com/fekuna/gardentrack/internal/harvest/dto"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"go.uber.org/zap"
)

type harvestUseCase struct {
	repo   harvest.Repository
	logger logger.ZapLogger
}

func NewHarvestUseCase(repo harvest.Repository, log logger.ZapLogger) harvest.UseCase {
	return &harvestUseCase{
		repo:   repo,
		logger: log,
	}
}

// RecordHarvest stores a harvest of a crop that is not yet harvested. The crop
// and space names are copied onto the record so it reads the same after
// either is removed.
func (uc *harvestUseCase) RecordHarvest(ctx context.Context, input *dto.RecordHarvestInput) (*model.Harvest, error) {
	if input.CropID == "" {
		return nil, fmt.Errorf("%w: a crop is required", model.ErrValidation)
	}
	if input.Quantity == nil {
		return nil, fmt.Errorf("%w: quantity is required", model.ErrValidation)
	}
	qty := *input.Quantity
	if math.IsNaN(qty) || math.IsInf(qty, 0) || qty < 0 {
		return nil, fmt.Errorf("%w: quantity must be zero or more", model.ErrValidation)
	}

	c, ok := uc.repo.Crop(input.CropID)
	if !ok {
		return nil, fmt.Errorf("%w: crop %q does not exist", model.ErrValidation, input.CropID)
	}
	if c.Status == model.CropHarvested {
		return nil, fmt.Errorf("%w: crop %q is already harvested", model.ErrValidation, c.Name)
	}

	quality := input.Quality
	if quality == "" {
		quality = model.QualityGood
	}
	if !quality.IsValid() {
		return nil, fmt.Errorf("%w: unknown quality %q", model.ErrValidation, quality)
	}

	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = dto.DefaultUnit
	}

	date := input.HarvestDate
	if date.IsZero() {
		date = model.Today()
	}

	var spaceName string
	if s, ok := uc.repo.Space(c.SpaceID); ok {
		spaceName = s.Name
	}

	recorded := uc.repo.AddHarvest(model.Harvest{
		CropID:      c.ID,
		CropName:    c.Name,
		SpaceName:   spaceName,
		Quantity:    qty,
		Unit:        unit,
		HarvestDate: date,
		Quality:     quality,
		Notes:       strings.TrimSpace(input.Notes),
	})

	uc.logger.Info("harvest recorded",
		zap.String("id", recorded.ID),
		zap.String("crop_id", recorded.CropID),
		zap.Float64("quantity", recorded.Quantity),
		zap.String("unit", recorded.Unit),
		zap.String("actor", auth.Actor(ctx)),
	)
	return &recorded, nil
}
