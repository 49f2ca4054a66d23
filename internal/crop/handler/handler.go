package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/gardentrack/internal/crop"
	"github.com/fekuna/gardentrack/internal/crop/dto"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/ui"
	"github.com/fekuna/gardentrack/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type CropHandler struct {
	uc     crop.UseCase
	src    view.Source
	logger logger.ZapLogger
}

func NewCropHandler(uc crop.UseCase, src view.Source, log logger.ZapLogger) *CropHandler {
	return &CropHandler{
		uc:     uc,
		src:    src,
		logger: log,
	}
}

func (h *CropHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "crops",
		Aliases: []string{"crop"},
		Short:   "Manage crops",
		RunE:    h.list,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List crops with their space and QR key",
			Args:  cobra.NoArgs,
			RunE:  h.list,
		},
		h.addCommand(),
		ui.RequireAuth(&cobra.Command{
			Use:     "remove <id>",
			Aliases: []string{"rm"},
			Short:   "Remove a crop; its harvests are kept",
			Args:    cobra.ExactArgs(1),
			RunE:    h.remove,
		}),
		ui.RequireAuth(&cobra.Command{
			Use:       "status <id> <status>",
			Short:     "Set a crop's status (" + statusList() + ")",
			Args:      cobra.ExactArgs(2),
			ValidArgs: statusNames(),
			RunE:      h.status,
		}),
	)
	return cmd
}

func (h *CropHandler) list(cmd *cobra.Command, _ []string) error {
	rows := view.CropRows(h.src)

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			r.Crop.ID,
			r.Crop.Name,
			ui.OrDash(r.Crop.Variety),
			r.SpaceName,
			ui.CropStatusBadge(r.Crop.Status),
			ui.Date(r.Crop.PlantedDate),
			ui.Date(r.Crop.ExpectedHarvest),
			r.Crop.QRData,
		})
	}

	ui.Println(cmd, ui.Title("Crops", fmt.Sprintf("%d crops tracked", len(rows))))
	ui.Println(cmd, ui.Table(
		[]string{"ID", "Name", "Variety", "Space", "Status", "Planted", "Expected", "QR"},
		table,
		"No crops yet. Plant one with `crops add`.",
	))
	return nil
}

func (h *CropHandler) addCommand() *cobra.Command {
	input := &dto.CreateCropInput{}
	var planted, expected, image string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Plant a crop in a garden space",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Name = strings.Join(args, " ")

			var err error
			if input.PlantedDate, err = parseDate("planted", planted); err != nil {
				return err
			}
			if input.ExpectedHarvest, err = parseDate("expected", expected); err != nil {
				return err
			}
			if image != "" {
				input.ImageURL = &image
			}

			created, err := h.uc.CreateCrop(cmd.Context(), input)
			if err != nil {
				h.logger.Debug("create crop rejected", zap.Error(err))
				return err
			}
			ui.Println(cmd, ui.Success(fmt.Sprintf("Planted %q (%s)", created.Name, created.ID)))
			ui.Println(cmd, "QR key: "+created.QRData)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.SpaceID, "space", "", "garden space id (required)")
	cmd.Flags().StringVar(&input.Variety, "variety", "", "variety, e.g. Roma")
	cmd.Flags().StringVar(&planted, "planted", "", "planted date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&expected, "expected", "", "expected harvest date YYYY-MM-DD")
	cmd.Flags().StringVar(&input.Notes, "notes", "", "notes")
	cmd.Flags().StringVar(&image, "image", "", "image reference")
	return ui.RequireAuth(cmd)
}

func (h *CropHandler) remove(cmd *cobra.Command, args []string) error {
	if err := h.uc.DeleteCrop(cmd.Context(), args[0]); err != nil {
		return err
	}
	ui.Println(cmd, ui.Success("Removed crop "+args[0]))
	return nil
}

func (h *CropHandler) status(cmd *cobra.Command, args []string) error {
	updated, err := h.uc.UpdateCropStatus(cmd.Context(), &dto.UpdateCropStatusInput{
		ID:     args[0],
		Status: model.CropStatus(args[1]),
	})
	if err != nil {
		return err
	}
	ui.Println(cmd, ui.Success(fmt.Sprintf("%s is now ", updated.Name))+ui.CropStatusBadge(updated.Status))
	return nil
}

func parseDate(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(ui.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: --%s must be YYYY-MM-DD", model.ErrValidation, flag)
	}
	return t, nil
}

func statusNames() []string {
	names := make([]string, 0, len(model.CropStatuses))
	for _, s := range model.CropStatuses {
		names = append(names, string(s))
	}
	return names
}

func statusList() string {
	return strings.Join(statusNames(), ", ")
}
