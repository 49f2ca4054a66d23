package crop

import (
	"context"

	"github.com/fekuna/gardentrack/internal/crop/dto"
	"github.com/fekuna/gardentrack/internal/model"
)

type UseCase interface {
	CreateCrop(ctx context.Context, input *dto.CreateCropInput) (*model.Crop, error)
	GetCrop(ctx context.Context, id string) (*model.Crop, error)
	UpdateCropStatus(ctx context.Context, input *dto.UpdateCropStatusInput) (*model.Crop, error)
	DeleteCrop(ctx context.Context, id string) error
}
