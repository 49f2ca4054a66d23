package harvest

import (
	"github.com/fekuna/gardentrack/internal/model"
)

type Repository interface {
	AddHarvest(h model.Harvest) model.Harvest
	Crop(id string) (model.Crop, bool)
	Space(id string) (model.GardenSpace, bool)
}
