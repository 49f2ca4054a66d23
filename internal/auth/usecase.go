package auth

import (
	"context"

	"github.com/fekuna/gardentrack/internal/model"
)

// UseCase is the session surface the commands use. *Directory implements it.
type UseCase interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context)
	Current() (model.Identity, bool)
	IsAuthenticated() bool
	AccountCount() int
}

var _ UseCase = (*Directory)(nil)
