package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fekuna/gardentrack/internal/harvest"
	"github.com/fekuna/gardentrack/internal/harvest/dto"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/ui"
	"github.com/fekuna/gardentrack/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type HarvestHandler struct {
	uc     harvest.UseCase
	src    view.Source
	logger logger.ZapLogger
}

func NewHarvestHandler(uc harvest.UseCase, src view.Source, log logger.ZapLogger) *HarvestHandler {
	return &HarvestHandler{
		uc:     uc,
		src:    src,
		logger: log,
	}
}

func (h *HarvestHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "harvests",
		Aliases: []string{"harvest"},
		Short:   "Record and review harvests",
		RunE:    h.list,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every recorded harvest",
			Args:  cobra.NoArgs,
			RunE:  h.list,
		},
		&cobra.Command{
			Use:   "candidates",
			Short: "List crops that can still be harvested",
			Args:  cobra.NoArgs,
			RunE:  h.candidates,
		},
		h.addCommand(),
	)
	return cmd
}

func (h *HarvestHandler) list(cmd *cobra.Command, _ []string) error {
	harvests := h.src.Harvests()

	rows := make([][]string, 0, len(harvests))
	for _, hv := range harvests {
		rows = append(rows, []string{
			hv.ID,
			hv.CropName,
			ui.OrDash(hv.SpaceName),
			ui.Quantity(hv.Quantity) + " " + hv.Unit,
			ui.QualityBadge(hv.Quality),
			ui.Date(hv.HarvestDate),
			ui.OrDash(hv.Notes),
		})
	}

	ui.Println(cmd, ui.Title("Harvests", fmt.Sprintf("%d harvests recorded", len(harvests))))
	ui.Println(cmd, ui.Table(
		[]string{"ID", "Crop", "Space", "Quantity", "Quality", "Date", "Notes"},
		rows,
		"No harvests recorded yet.",
	))
	return nil
}

func (h *HarvestHandler) candidates(cmd *cobra.Command, _ []string) error {
	crops := view.HarvestCandidates(h.src)

	rows := make([][]string, 0, len(crops))
	for _, c := range crops {
		rows = append(rows, []string{c.ID, c.Name, ui.OrDash(c.Variety), ui.CropStatusBadge(c.Status)})
	}
	ui.Println(cmd, ui.Table([]string{"ID", "Crop", "Variety", "Status"}, rows, "Every crop is harvested."))
	return nil
}

func (h *HarvestHandler) addCommand() *cobra.Command {
	input := &dto.RecordHarvestInput{}
	var quality, date string

	cmd := &cobra.Command{
		Use:   "add <crop-id> <quantity>",
		Short: "Record a harvest of a crop",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.CropID = args[0]

			q, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: quantity %q is not a number", model.ErrValidation, args[1])
			}
			input.Quantity = &q
			input.Quality = model.HarvestQuality(quality)

			if date != "" {
				if input.HarvestDate, err = time.Parse(ui.DateLayout, date); err != nil {
					return fmt.Errorf("%w: --date must be YYYY-MM-DD", model.ErrValidation)
				}
			}

			recorded, err := h.uc.RecordHarvest(cmd.Context(), input)
			if err != nil {
				h.logger.Debug("record harvest rejected", zap.Error(err))
				return err
			}
			ui.Println(cmd, ui.Success(fmt.Sprintf("Recorded %s %s of %s (%s)",
				ui.Quantity(recorded.Quantity), recorded.Unit, recorded.CropName, recorded.ID)))
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Unit, "unit", dto.DefaultUnit, "unit of measure")
	cmd.Flags().StringVar(&quality, "quality", string(model.QualityGood), "excellent, good, fair or poor")
	cmd.Flags().StringVar(&date, "date", "", "harvest date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&input.Notes, "notes", "", "notes")
	return ui.RequireAuth(cmd)
}
