package dto

import (
	"time"

	"github.com/fekuna/gardentrack/internal/model"
)

type CreateCropInput struct {
	Name            string
	Variety         string
	SpaceID         string
	PlantedDate     time.Time // zero means today
	ExpectedHarvest time.Time
	Notes           string
	ImageURL        *string
}

type UpdateCropStatusInput struct {
	ID     string
	Status model.CropStatus
}
