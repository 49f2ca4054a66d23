package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/gardentrack/internal/auth"
	"github.com/fekuna/gardentrack/internal/crop"
	"github.com/fekuna/gardentrack/internal/crop/dto"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"go.uber.org/zap"
)

type Option func(*cropUseCase)

// WithClock replaces time.Now for QR key generation.
func WithClock(now func() time.Time) Option {
	return func(uc *cropUseCase) {
		uc.now = now
	}
}

type cropUseCase struct {
	repo   crop.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewCropUseCase(repo crop.Repository, log logger.ZapLogger, opts ...Option) crop.UseCase {
	uc := &cropUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *cropUseCase) CreateCrop(ctx context.Context, input *dto.CreateCropInput) (*model.Crop, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: crop name is required", model.ErrValidation)
	}
	if input.SpaceID == "" {
		return nil, fmt.Errorf("%w: a garden space is required", model.ErrValidation)
	}
	// The space must exist now; later removal of the space is allowed.
	if _, ok := uc.repo.Space(input.SpaceID); !ok {
		return nil, fmt.Errorf("%w: garden space %q does not exist", model.ErrValidation, input.SpaceID)
	}

	planted := input.PlantedDate
	if planted.IsZero() {
		planted = model.Today()
	}

	created := uc.repo.AddCrop(model.Crop{
		Name:            name,
		Variety:         strings.TrimSpace(input.Variety),
		SpaceID:         input.SpaceID,
		PlantedDate:     planted,
		ExpectedHarvest: input.ExpectedHarvest,
		Status:          model.CropPlanted,
		Notes:           strings.TrimSpace(input.Notes),
		QRData:          uc.newQRKey(name),
		ImageURL:        input.ImageURL,
	})

	uc.logger.Info("crop created",
		zap.String("id", created.ID),
		zap.String("name", created.Name),
		zap.String("space_id", created.SpaceID),
		zap.String("qr", created.QRData),
		zap.String("actor", auth.Actor(ctx)),
	)
	return &created, nil
}

func (uc *cropUseCase) GetCrop(ctx context.Context, id string) (*model.Crop, error) {
	c, ok := uc.repo.Crop(id)
	if !ok {
		return nil, fmt.Errorf("crop %q: %w", id, model.ErrNotFound)
	}
	return &c, nil
}

func (uc *cropUseCase) UpdateCropStatus(ctx context.Context, input *dto.UpdateCropStatusInput) (*model.Crop, error) {
	if !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown crop status %q", model.ErrValidation, input.Status)
	}
	c, ok := uc.repo.Crop(input.ID)
	if !ok {
		return nil, fmt.Errorf("crop %q: %w", input.ID, model.ErrNotFound)
	}

	previous := c.Status
	c.Status = input.Status
	uc.repo.UpdateCrop(c)

	uc.logger.Info("crop status changed",
		zap.String("id", c.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(c.Status)),
		zap.String("actor", auth.Actor(ctx)),
	)
	return &c, nil
}

// DeleteCrop removes the crop only. Its harvests stay on record.
func (uc *cropUseCase) DeleteCrop(ctx context.Context, id string) error {
	if _, ok := uc.repo.Crop(id); !ok {
		return fmt.Errorf("crop %q: %w", id, model.ErrNotFound)
	}
	uc.repo.RemoveCrop(id)

	uc.logger.Info("crop removed", zap.String("id", id), zap.String("actor", auth.Actor(ctx)))
	return nil
}

// newQRKey returns CROP-<unix millis>-<NAME>. A key already held by another
// crop is skipped by moving to the next millisecond.
func (uc *cropUseCase) newQRKey(name string) string {
	label := strings.ToUpper(strings.Join(strings.Fields(name), "-"))
	ms := uc.now().UnixMilli()
	for {
		key := fmt.Sprintf("CROP-%d-%s", ms, label)
		if _, taken := uc.repo.GetCropByQR(key); !taken {
			return key
		}
		ms++
	}
}
