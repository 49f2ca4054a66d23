// Package cli assembles the feature commands into the gardentrack command
// tree and runs the interactive shell.
package cli

import (
	"fmt"

	"github.com/fekuna/gardentrack/internal/auth"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/ui"
	"github.com/fekuna/gardentrack/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Commander builds a fresh command subtree on every call, so flag values
// never leak from one shell line into the next.
type Commander interface {
	Command() *cobra.Command
}

// CommandSet contributes several top-level commands at once.
type CommandSet interface {
	Commands() []*cobra.Command
}

type App struct {
	name     string
	sessions auth.UseCase
	src      view.Source
	logger   logger.ZapLogger
	sets     []CommandSet
	features []Commander
}

func NewApp(name string, sessions auth.UseCase, src view.Source, log logger.ZapLogger) *App {
	return &App{
		name:     name,
		sessions: sessions,
		src:      src,
		logger:   log,
	}
}

func (a *App) Register(features ...Commander) *App {
	a.features = append(a.features, features...)
	return a
}

func (a *App) RegisterSet(sets ...CommandSet) *App {
	a.sets = append(a.sets, sets...)
	return a
}

// Root builds the full command tree. A bare invocation opens the shell.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "gardentrack",
		Short:         a.name + " keeps garden spaces, crops, harvests, the team and the shop in one place",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ui.InShell(cmd.Context()) {
				return cmd.Help()
			}
			return a.Shell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
		PersistentPreRunE: a.authorize,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(a.dashboardCommand())
	for _, f := range a.features {
		root.AddCommand(f.Command())
	}
	for _, s := range a.sets {
		root.AddCommand(s.Commands()...)
	}
	root.AddCommand(&cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ui.InShell(cmd.Context()) {
				return fmt.Errorf("already in the shell")
			}
			return a.Shell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	})
	return root
}

// authorize blocks commands marked with ui.RequireAuth while anonymous and
// puts the signed-in identity on the command context.
func (a *App) authorize(cmd *cobra.Command, _ []string) error {
	id, ok := a.sessions.Current()
	if !ok {
		if ui.NeedsAuth(cmd) {
			a.logger.Debug("blocked anonymous command", zap.String("command", cmd.CommandPath()))
			return fmt.Errorf("%w: run `login <email> <password>` first", auth.ErrUnauthenticated)
		}
		return nil
	}
	cmd.SetContext(auth.WithIdentity(cmd.Context(), id))
	return nil
}
