package space

import (
	"context"

	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/space/dto"
)

type UseCase interface {
	CreateSpace(ctx context.Context, input *dto.CreateSpaceInput) (*model.GardenSpace, error)
	GetSpace(ctx context.Context, id string) (*model.GardenSpace, error)
	DeleteSpace(ctx context.Context, id string) error
}
