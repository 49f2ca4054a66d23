package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/gardentrack/internal/auth"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/member"
	"github.com/fekuna/gardentrack/internal/member/dto"
	"github.com/fekuna/gardentrack/internal/model"
	"go.uber.org/zap"
)

type memberUseCase struct {
	repo   member.Repository
	logger logger.ZapLogger
}

func NewMemberUseCase(repo member.Repository, log logger.ZapLogger) member.UseCase {
	return &memberUseCase{
		repo:   repo,
		logger: log,
	}
}

// AddMember adds a team member. Team members are records only; they are not
// login accounts, and duplicate emails are allowed.
func (uc *memberUseCase) AddMember(ctx context.Context, input *dto.AddMemberInput) (*model.GardenUser, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return nil, fmt.Errorf("%w: member name is required", model.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: member email is required", model.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = model.RoleGardener
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", model.ErrValidation, role)
	}

	added := uc.repo.AddMember(model.GardenUser{
		Name:       name,
		Email:      email,
		Role:       role,
		JoinedDate: model.Today(),
		Avatar:     model.Initials(name),
	})

	uc.logger.Info("member added",
		zap.String("id", added.ID),
		zap.String("role", string(added.Role)),
		zap.String("actor", auth.Actor(ctx)),
	)
	return &added, nil
}

func (uc *memberUseCase) RemoveMember(ctx context.Context, id string) error {
	found := false
	for _, m := range uc.repo.Members() {
		if m.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("member %q: %w", id, model.ErrNotFound)
	}
	uc.repo.RemoveMember(id)

	uc.logger.Info("member removed", zap.String("id", id), zap.String("actor", auth.Actor(ctx)))
	return nil
}
