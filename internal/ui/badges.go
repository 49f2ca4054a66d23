package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fekuna/gardentrack/internal/model"
)

func badge(label string, fg, bg lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1).
		Render(label)
}

var light = lipgloss.Color("#FFFFFF")
var dark = lipgloss.Color("#1B1B1B")

// CropStatusColor is the accent used for a crop status in badges and charts.
func CropStatusColor(s model.CropStatus) lipgloss.Color {
	switch s {
	case model.CropPlanted:
		return Water
	case model.CropGrowing:
		return Leaf
	case model.CropReady:
		return HarvestGld
	case model.CropHarvested:
		return Sprout
	}
	return Muted
}

func CropStatusBadge(s model.CropStatus) string {
	fg := light
	if s == model.CropReady {
		fg = dark
	}
	return badge(s.Label(), fg, CropStatusColor(s))
}

func ShopStatusBadge(s model.ShopStatus) string {
	switch s {
	case model.StatusInStock:
		return badge(s.Label(), light, Leaf)
	case model.StatusSale:
		return badge(s.Label(), dark, HarvestGld)
	case model.StatusOutOfStock:
		return badge(s.Label(), light, Danger)
	}
	return badge(string(s), light, Muted)
}

func QualityBadge(q model.HarvestQuality) string {
	switch q {
	case model.QualityExcellent:
		return badge("Excellent", light, Leaf)
	case model.QualityGood:
		return badge("Good", dark, Sprout)
	case model.QualityFair:
		return badge("Fair", dark, HarvestGld)
	case model.QualityPoor:
		return badge("Poor", light, Danger)
	}
	return badge(string(q), light, Muted)
}

func RoleBadge(r model.Role) string {
	switch r {
	case model.RoleOwner:
		return badge("Owner", light, Leaf)
	case model.RoleManager:
		return badge("Manager", light, Water)
	case model.RoleGardener:
		return badge("Gardener", dark, Sprout)
	case model.RoleViewer:
		return badge("Viewer", dark, Muted)
	}
	return badge(string(r), dark, Muted)
}

func SpaceTypeBadge(t model.SpaceType) string {
	switch t {
	case model.SpaceRaisedBed:
		return badge(t.Label(), dark, Sprout)
	case model.SpaceGreenhouse:
		return badge(t.Label(), light, Leaf)
	case model.SpacePlot:
		return badge(t.Label(), light, Soil)
	case model.SpaceContainer:
		return badge(t.Label(), dark, HarvestGld)
	case model.SpaceIndoor:
		return badge(t.Label(), light, Water)
	}
	return badge(string(t), dark, Muted)
}
