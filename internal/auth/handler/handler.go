package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fekuna/gardentrack/internal/auth"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/ui"
	"github.com/spf13/cobra"
)

const MinPasswordLength = 6

type AuthHandler struct {
	uc     auth.UseCase
	logger logger.ZapLogger
}

func NewAuthHandler(uc auth.UseCase, log logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: log,
	}
}

// Commands returns the top-level session commands.
func (h *AuthHandler) Commands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "login <email> <password>",
			Short: "Sign in",
			Args:  cobra.ExactArgs(2),
			RunE:  h.login,
		},
		h.registerCommand(),
		{
			Use:   "logout",
			Short: "Sign out",
			Args:  cobra.NoArgs,
			RunE:  h.logout,
		},
		{
			Use:   "whoami",
			Short: "Show the signed-in user",
			Args:  cobra.NoArgs,
			RunE:  h.whoami,
		},
	}
}

func (h *AuthHandler) login(cmd *cobra.Command, args []string) error {
	if err := h.uc.Login(cmd.Context(), args[0], args[1]); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fmt.Errorf("login failed: %w", err)
		}
		return err
	}
	id, _ := h.uc.Current()
	ui.Println(cmd, ui.Success("Welcome back, "+id.Name))
	return nil
}

func (h *AuthHandler) registerCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register <name>",
		Short: "Create an account and sign in",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			email = strings.TrimSpace(email)
			if name == "" || email == "" {
				return fmt.Errorf("%w: name and --email are required", model.ErrValidation)
			}
			if utf8.RuneCountInString(password) < MinPasswordLength {
				return fmt.Errorf("%w: password must be at least %d characters", model.ErrValidation, MinPasswordLength)
			}

			if err := h.uc.Register(cmd.Context(), name, email, password); err != nil {
				return err
			}
			ui.Println(cmd, ui.Success(fmt.Sprintf("Account created. Signed in as %s <%s>", name, email)))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&password, "password", "", fmt.Sprintf("password, at least %d characters", MinPasswordLength))
	return cmd
}

func (h *AuthHandler) logout(cmd *cobra.Command, _ []string) error {
	h.uc.Logout(cmd.Context())
	ui.Println(cmd, "Signed out.")
	return nil
}

func (h *AuthHandler) whoami(cmd *cobra.Command, _ []string) error {
	id, ok := h.uc.Current()
	if !ok {
		ui.Println(cmd, ui.Warning("Not signed in. Demo: admin@gardentrack.co.za / admin123"))
		return nil
	}
	ui.Println(cmd, ui.KeyValues([][2]string{
		{"Name", id.Name},
		{"Email", id.Email},
		{"Accounts", fmt.Sprintf("%d", h.uc.AccountCount())},
	}))
	return nil
}
