package member

import (
	"context"

	"github.com/fekuna/gardentrack/internal/member/dto"
	"github.com/fekuna/gardentrack/internal/model"
)

type UseCase interface {
	AddMember(ctx context.Context, input *dto.AddMemberInput) (*model.GardenUser, error)
	RemoveMember(ctx context.Context, id string) error
}
