package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/gardentrack/internal/auth"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/space"
	"github.com/fekuna/gardentrack/internal/space/dto"
	"go.uber.org/zap"
)

type spaceUseCase struct {
	repo   space.Repository
	logger logger.ZapLogger
}

func NewSpaceUseCase(repo space.Repository, log logger.ZapLogger) space.UseCase {
	return &spaceUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *spaceUseCase) CreateSpace(ctx context.Context, input *dto.CreateSpaceInput) (*model.GardenSpace, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: space name is required", model.ErrValidation)
	}

	spaceType := input.Type
	if spaceType == "" {
		spaceType = model.SpacePlot
	}
	if !spaceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown space type %q", model.ErrValidation, spaceType)
	}

	created := uc.repo.AddSpace(model.GardenSpace{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Size:        strings.TrimSpace(input.Size),
		Type:        spaceType,
		CreatedAt:   model.Today(),
	})

	uc.logger.Info("space created",
		zap.String("id", created.ID),
		zap.String("name", created.Name),
		zap.String("actor", auth.Actor(ctx)),
	)
	return &created, nil
}

func (uc *spaceUseCase) GetSpace(ctx context.Context, id string) (*model.GardenSpace, error) {
	s, ok := uc.repo.Space(id)
	if !ok {
		return nil, fmt.Errorf("space %q: %w", id, model.ErrNotFound)
	}
	return &s, nil
}

// DeleteSpace removes the space only. Crops planted in it keep their space
// reference.
func (uc *spaceUseCase) DeleteSpace(ctx context.Context, id string) error {
	if _, ok := uc.repo.Space(id); !ok {
		return fmt.Errorf("space %q: %w", id, model.ErrNotFound)
	}
	uc.repo.RemoveSpace(id)

	uc.logger.Info("space removed", zap.String("id", id), zap.String("actor", auth.Actor(ctx)))
	return nil
}
