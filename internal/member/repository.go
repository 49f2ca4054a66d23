package member

import (
	"github.com/fekuna/gardentrack/internal/model"
)

type Repository interface {
	AddMember(m model.GardenUser) model.GardenUser
	RemoveMember(id string)
	Members() []model.GardenUser
}
