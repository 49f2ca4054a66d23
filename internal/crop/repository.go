package crop

import (
	"github.com/fekuna/gardentrack/internal/model"
)

type Repository interface {
	AddCrop(crop model.Crop) model.Crop
	RemoveCrop(id string)
	UpdateCrop(crop model.Crop)
	Crop(id string) (model.Crop, bool)
	GetCropByQR(code string) (model.Crop, bool)
	Space(id string) (model.GardenSpace, bool)
}
