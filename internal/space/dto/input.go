package dto

import "github.com/fekuna/gardentrack/internal/model"

type CreateSpaceInput struct {
	Name        string
	Description string
	Size        string
	Type        model.SpaceType // empty means plot
}
