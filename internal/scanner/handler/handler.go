package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/scanner"
	"github.com/fekuna/gardentrack/internal/ui"
	"github.com/fekuna/gardentrack/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type ScanHandler struct {
	crops  scanner.CropFinder
	src    view.Source
	prefix string
	device string
	opts   []scanner.Option
	logger logger.ZapLogger
}

// NewScanHandler builds the scan command. device is the default decoded-text
// source for --device; prefix is stripped from every decoded line.
func NewScanHandler(crops scanner.CropFinder, src view.Source, prefix, device string, log logger.ZapLogger, opts ...scanner.Option) *ScanHandler {
	return &ScanHandler{
		crops:  crops,
		src:    src,
		prefix: prefix,
		device: device,
		opts:   append([]scanner.Option{scanner.WithLogger(log)}, opts...),
		logger: log,
	}
}

func (h *ScanHandler) Command() *cobra.Command {
	var stream bool
	var device string

	cmd := &cobra.Command{
		Use:   "scan [code]",
		Short: "Look up a crop by its QR code",
		Long: "Look up a crop by its QR code. Give the code directly, pipe decoder\n" +
			"output with --stream (e.g. `zbarcam | gardentrack scan --stream`), or\n" +
			"read from a decoder FIFO with --device.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 1:
				// Manual entry trims surrounding blanks; the lookup itself is exact.
				sc := scanner.New(h.crops, nil, h.opts...)
				h.render(cmd, sc.Lookup(strings.TrimSpace(args[0])))
				return nil
			case stream:
				if ui.InShell(cmd.Context()) {
					return errors.New("--stream reads standard input, which the shell is using; use --device instead")
				}
				return h.scan(cmd, scanner.NewLineDecoder(cmd.InOrStdin(), h.prefix))
			case cmd.Flags().Changed("device") || h.device != "":
				path := h.device
				if cmd.Flags().Changed("device") {
					path = device
				}
				return h.scan(cmd, scanner.NewDeviceDecoder(path, h.prefix))
			}
			return errors.New("give a code, --stream or --device")
		},
	}
	cmd.Flags().BoolVar(&stream, "stream", false, "read decoded codes from standard input")
	cmd.Flags().StringVar(&device, "device", "", "read decoded codes from this file or FIFO")
	return cmd
}

// scan waits for the first decoded code. Interrupting the command stops the
// scan.
func (h *ScanHandler) scan(cmd *cobra.Command, dec scanner.Decoder) error {
	sc := scanner.New(h.crops, dec, h.opts...)

	results, err := sc.Start(cmd.Context())
	if err != nil {
		if errors.Is(err, scanner.ErrCameraUnavailable) {
			return fmt.Errorf("%w. Use manual entry instead: scan <code>", err)
		}
		return err
	}
	defer sc.Stop()

	ui.Println(cmd, ui.SubtitleStyle.Render("Waiting for a QR code..."))
	res, ok := <-results
	if !ok {
		h.logger.Debug("scan ended without a code")
		ui.Println(cmd, ui.Warning("Scan stopped before a code was read."))
		return nil
	}
	h.render(cmd, res)
	return nil
}

func (h *ScanHandler) render(cmd *cobra.Command, res scanner.Result) {
	if !res.Found {
		h.logger.Debug("no crop for code", zap.String("code", res.Code))
		ui.Println(cmd, ui.Error(fmt.Sprintf("Scanned: %s. No matching crop found", res.Code)))
		return
	}

	detail := view.ScannerDetail(h.src, res.Crop)
	c := detail.Crop
	ui.Println(cmd, ui.Title(c.Name, c.Variety))
	ui.Println(cmd, ui.KeyValues([][2]string{
		{"Space", detail.SpaceName},
		{"Status", ui.CropStatusBadge(c.Status)},
		{"Planted", ui.Date(c.PlantedDate)},
		{"Expected", ui.Date(c.ExpectedHarvest)},
		{"QR", c.QRData},
		{"Notes", ui.OrDash(c.Notes)},
	}))

	if len(detail.Harvests) == 0 {
		return
	}
	rows := make([][]string, 0, len(detail.Harvests))
	for _, hv := range detail.Harvests {
		rows = append(rows, []string{
			ui.Date(hv.HarvestDate),
			ui.Quantity(hv.Quantity) + " " + hv.Unit,
			ui.QualityBadge(hv.Quality),
		})
	}
	ui.Println(cmd, ui.Table([]string{"Harvested", "Quantity", "Quality"}, rows, ""))
}
