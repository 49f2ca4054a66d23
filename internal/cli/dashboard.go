package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fekuna/gardentrack/internal/ui"
	"github.com/fekuna/gardentrack/internal/view"
	"github.com/spf13/cobra"
)

const chartWidth = 24

func (a *App) dashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "home"},
		Short:   "Show garden totals, crop status and recent harvests",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.renderDashboard(cmd, view.Dashboard(a.src))
			return nil
		},
	}
}

func (a *App) renderDashboard(cmd *cobra.Command, sum view.DashboardSummary) {
	greeting := "Welcome to your garden overview"
	if id, ok := a.sessions.Current(); ok {
		greeting = "Welcome back, " + id.Name
	}
	ui.Println(cmd, ui.Title("Dashboard", greeting))

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Garden Spaces", strconv.Itoa(sum.Spaces), "Active growing areas"),
		statCard("Active Crops", strconv.Itoa(sum.ActiveCrops), fmt.Sprintf("%d total crops", sum.TotalCrops)),
		statCard("Total Harvest", ui.Quantity(sum.TotalYield)+" kg", fmt.Sprintf("%d harvests recorded", sum.HarvestCount)),
		statCard("Team Members", strconv.Itoa(sum.Members), "Managing your garden"),
	)
	ui.Println(cmd, cards)

	ui.Println(cmd, ui.TitleStyle.Render("Crop Status"))
	for _, share := range sum.StatusShares {
		ui.Println(cmd, fmt.Sprintf("%-10s %s %3d  %5.1f%%",
			share.Status.Label(),
			ui.Bar(share.Percent, chartWidth, ui.CropStatusColor(share.Status)),
			share.Count,
			share.Percent,
		))
	}

	rows := make([][]string, 0, len(sum.RecentHarvests))
	for _, h := range sum.RecentHarvests {
		rows = append(rows, []string{
			h.CropName,
			ui.OrDash(h.SpaceName),
			ui.Quantity(h.Quantity) + " " + h.Unit,
			ui.QualityBadge(h.Quality),
			ui.Date(h.HarvestDate),
		})
	}
	ui.Println(cmd, ui.TitleStyle.Render("Recent Harvests"))
	ui.Println(cmd, ui.Table([]string{"Crop", "Space", "Quantity", "Quality", "Date"}, rows, "No harvests yet."))
}

func statCard(title, value, subtitle string) string {
	return ui.CardStyle.Width(22).Render(
		ui.MutedStyle.Render(title) + "\n" +
			lipgloss.NewStyle().Bold(true).Render(value) + "\n" +
			ui.SubtitleStyle.Render(subtitle),
	)
}
