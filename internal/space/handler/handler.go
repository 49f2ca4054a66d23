package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/space"
	"github.com/fekuna/gardentrack/internal/space/dto"
	"github.com/fekuna/gardentrack/internal/ui"
	"github.com/fekuna/gardentrack/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type SpaceHandler struct {
	uc     space.UseCase
	src    view.Source
	logger logger.ZapLogger
}

func NewSpaceHandler(uc space.UseCase, src view.Source, log logger.ZapLogger) *SpaceHandler {
	return &SpaceHandler{
		uc:     uc,
		src:    src,
		logger: log,
	}
}

func (h *SpaceHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "spaces",
		Aliases: []string{"space"},
		Short:   "Manage garden spaces",
		RunE:    h.list,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List garden spaces with their crop counts",
			Args:  cobra.NoArgs,
			RunE:  h.list,
		},
		h.addCommand(),
		ui.RequireAuth(&cobra.Command{
			Use:     "remove <id>",
			Aliases: []string{"rm"},
			Short:   "Remove a garden space; its crops are kept",
			Args:    cobra.ExactArgs(1),
			RunE:    h.remove,
		}),
	)
	return cmd
}

func (h *SpaceHandler) list(cmd *cobra.Command, _ []string) error {
	rows := view.SpaceRows(h.src)

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			r.Space.ID,
			r.Space.Name,
			ui.SpaceTypeBadge(r.Space.Type),
			ui.OrDash(r.Space.Size),
			strconv.Itoa(r.CropCount),
			ui.OrDash(r.Space.Description),
		})
	}

	ui.Println(cmd, ui.Title("Garden Spaces", fmt.Sprintf("%d growing areas", len(rows))))
	ui.Println(cmd, ui.Table(
		[]string{"ID", "Name", "Type", "Size", "Crops", "Description"},
		table,
		"No garden spaces yet. Add one with `spaces add`.",
	))
	return nil
}

func (h *SpaceHandler) addCommand() *cobra.Command {
	input := &dto.CreateSpaceInput{}
	var spaceType string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a garden space",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Name = strings.Join(args, " ")
			input.Type = model.SpaceType(spaceType)

			created, err := h.uc.CreateSpace(cmd.Context(), input)
			if err != nil {
				h.logger.Debug("create space rejected", zap.Error(err))
				return err
			}
			ui.Println(cmd, ui.Success(fmt.Sprintf("Added space %q (%s)", created.Name, created.ID)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input.Description, "description", "d", "", "what grows here")
	cmd.Flags().StringVarP(&input.Size, "size", "s", "", "free-text size, e.g. 10x20 ft")
	cmd.Flags().StringVarP(&spaceType, "type", "t", string(model.SpacePlot), "one of "+spaceTypeList())
	return ui.RequireAuth(cmd)
}

func (h *SpaceHandler) remove(cmd *cobra.Command, args []string) error {
	if err := h.uc.DeleteSpace(cmd.Context(), args[0]); err != nil {
		return err
	}
	ui.Println(cmd, ui.Success("Removed space "+args[0]))
	return nil
}

func spaceTypeList() string {
	names := make([]string, 0, len(model.SpaceTypes))
	for _, t := range model.SpaceTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
