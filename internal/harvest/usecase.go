package harvest

import (
	"context"

	"github.com/fekuna/gardentrack/internal/harvest/dto"
	"github.com/fekuna/gardentrack/internal/model"
)

type UseCase interface {
	RecordHarvest(ctx context.Context, input *dto.RecordHarvestInput) (*model.Harvest, error)
}
