package handler

import (
	"fmt"
	"strings"

	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/member"
	"github.com/fekuna/gardentrack/internal/member/dto"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/ui"
	"github.com/fekuna/gardentrack/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type MemberHandler struct {
	uc     member.UseCase
	src    view.Source
	logger logger.ZapLogger
}

func NewMemberHandler(uc member.UseCase, src view.Source, log logger.ZapLogger) *MemberHandler {
	return &MemberHandler{
		uc:     uc,
		src:    src,
		logger: log,
	}
}

func (h *MemberHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "members",
		Aliases: []string{"team", "users"},
		Short:   "Manage garden team members",
		RunE:    h.list,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List team members",
			Args:  cobra.NoArgs,
			RunE:  h.list,
		},
		h.addCommand(),
		ui.RequireAuth(&cobra.Command{
			Use:     "remove <id>",
			Aliases: []string{"rm"},
			Short:   "Remove a team member",
			Args:    cobra.ExactArgs(1),
			RunE:    h.remove,
		}),
	)
	return cmd
}

func (h *MemberHandler) list(cmd *cobra.Command, _ []string) error {
	team := view.Team(h.src)

	rows := make([][]string, 0, len(team))
	for _, m := range team {
		rows = append(rows, []string{
			m.ID,
			m.Avatar,
			m.Name,
			m.Email,
			ui.RoleBadge(m.Role),
			ui.Date(m.JoinedDate),
		})
	}

	ui.Println(cmd, ui.Title("Team", "Manage garden team members"))
	ui.Println(cmd, ui.Table(
		[]string{"ID", "", "Name", "Email", "Role", "Joined"},
		rows,
		"No team members yet.",
	))
	return nil
}

func (h *MemberHandler) addCommand() *cobra.Command {
	input := &dto.AddMemberInput{}
	var role string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a team member",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Name = strings.Join(args, " ")
			input.Role = model.Role(role)

			added, err := h.uc.AddMember(cmd.Context(), input)
			if err != nil {
				h.logger.Debug("add member rejected", zap.Error(err))
				return err
			}
			ui.Println(cmd, ui.Success(fmt.Sprintf("Added %s [%s] as %s (%s)",
				added.Name, added.Avatar, added.Role, added.ID)))
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&role, "role", string(model.RoleGardener), "owner, manager, gardener or viewer")
	return ui.RequireAuth(cmd)
}

func (h *MemberHandler) remove(cmd *cobra.Command, args []string) error {
	if err := h.uc.RemoveMember(cmd.Context(), args[0]); err != nil {
		return err
	}
	ui.Println(cmd, ui.Success("Removed member "+args[0]))
	return nil
}
