package dto

import "github.com/fekuna/gardentrack/internal/model"

type AddMemberInput struct {
	Name  string
	Email string
	Role  model.Role // empty means gardener
}
