package space

import (
	"github.com/fekuna/gardentrack/internal/model"
)

type Repository interface {
	AddSpace(space model.GardenSpace) model.GardenSpace
	RemoveSpace(id string)
	Space(id string) (model.GardenSpace, bool)
}
