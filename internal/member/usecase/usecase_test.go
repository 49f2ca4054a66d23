package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/member/dto"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMember(t *testing.T) {
	s := store.New()
	uc := NewMemberUseCase(s, logger.NewNop())

	added, err := uc.AddMember(context.Background(), &dto.AddMemberInput{
		Name:  " riley  ann marsh ",
		Email: "riley@garden.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "riley  ann marsh", added.Name)
	assert.Equal(t, "RA", added.Avatar)
	assert.Equal(t, model.RoleGardener, added.Role)
	assert.False(t, added.JoinedDate.IsZero())
	assert.Len(t, s.Members(), 1)
}

func TestAddMemberSingleName(t *testing.T) {
	uc := NewMemberUseCase(store.New(), logger.NewNop())

	added, err := uc.AddMember(context.Background(), &dto.AddMemberInput{Name: "Cher", Email: "c@x.io", Role: model.RoleViewer})
	require.NoError(t, err)
	assert.Equal(t, "C", added.Avatar)
	assert.Equal(t, model.RoleViewer, added.Role)
}

func TestAddMemberValidation(t *testing.T) {
	tests := []struct {
		name  string
		input dto.AddMemberInput
	}{
		{name: "no name", input: dto.AddMemberInput{Email: "a@b.c"}},
		{name: "no email", input: dto.AddMemberInput{Name: "Alex"}},
		{name: "unknown role", input: dto.AddMemberInput{Name: "Alex", Email: "a@b.c", Role: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.New()
			uc := NewMemberUseCase(s, logger.NewNop())

			_, err := uc.AddMember(context.Background(), &tt.input)
			assert.ErrorIs(t, err, model.ErrValidation)
			assert.Empty(t, s.Members())
		})
	}
}

func TestRemoveMember(t *testing.T) {
	s := store.New()
	uc := NewMemberUseCase(s, logger.NewNop())
	m := s.AddMember(model.GardenUser{Name: "Sam Bloom"})

	require.NoError(t, uc.RemoveMember(context.Background(), m.ID))
	assert.Empty(t, s.Members())
	assert.ErrorIs(t, uc.RemoveMember(context.Background(), m.ID), model.ErrNotFound)
}
