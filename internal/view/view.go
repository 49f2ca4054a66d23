// Package view derives the read-only figures each screen shows. Nothing here
// mutates state; every function works on a snapshot taken from a Source.
package view

import (
	"github.com/fekuna/gardentrack/internal/model"
)

// UnknownSpace is shown when a crop names a space that no longer exists.
const UnknownSpace = "Unknown"

const recentHarvestLimit = 5

// Source is the read side of the store.
type Source interface {
	Spaces() []model.GardenSpace
	Crops() []model.Crop
	Harvests() []model.Harvest
	Members() []model.GardenUser
	ShopItems() []model.ShopItem
}

type StatusShare struct {
	Status  model.CropStatus
	Count   int
	Percent float64
}

type DashboardSummary struct {
	Spaces         int
	ActiveCrops    int
	TotalCrops     int
	TotalYield     float64
	HarvestCount   int
	Members        int
	StatusShares   []StatusShare
	RecentHarvests []model.Harvest
}

func Dashboard(src Source) DashboardSummary {
	crops := src.Crops()
	harvests := src.Harvests()

	sum := DashboardSummary{
		Spaces:       len(src.Spaces()),
		TotalCrops:   len(crops),
		HarvestCount: len(harvests),
		Members:      len(src.Members()),
	}

	counts := make(map[model.CropStatus]int, len(model.CropStatuses))
	for _, c := range crops {
		counts[c.Status]++
		if c.Status != model.CropHarvested {
			sum.ActiveCrops++
		}
	}
	total := len(crops)
	if total == 0 {
		total = 1
	}
	for _, st := range model.CropStatuses {
		sum.StatusShares = append(sum.StatusShares, StatusShare{
			Status:  st,
			Count:   counts[st],
			Percent: float64(counts[st]) / float64(total) * 100,
		})
	}

	for _, h := range harvests {
		sum.TotalYield += h.Quantity
	}

	// Most recently recorded first.
	for i := len(harvests) - 1; i >= 0 && len(sum.RecentHarvests) < recentHarvestLimit; i-- {
		sum.RecentHarvests = append(sum.RecentHarvests, harvests[i])
	}
	return sum
}

type SpaceRow struct {
	Space     model.GardenSpace
	CropCount int
}

func SpaceRows(src Source) []SpaceRow {
	counts := make(map[string]int)
	for _, c := range src.Crops() {
		counts[c.SpaceID]++
	}

	spaces := src.Spaces()
	rows := make([]SpaceRow, 0, len(spaces))
	for _, s := range spaces {
		rows = append(rows, SpaceRow{Space: s, CropCount: counts[s.ID]})
	}
	return rows
}

type CropRow struct {
	Crop      model.Crop
	SpaceName string
}

func CropRows(src Source) []CropRow {
	names := spaceNames(src)

	crops := src.Crops()
	rows := make([]CropRow, 0, len(crops))
	for _, c := range crops {
		rows = append(rows, CropRow{Crop: c, SpaceName: spaceName(names, c.SpaceID)})
	}
	return rows
}

// HarvestCandidates lists crops that can still be harvested.
func HarvestCandidates(src Source) []model.Crop {
	var out []model.Crop
	for _, c := range src.Crops() {
		if c.Status != model.CropHarvested {
			out = append(out, c)
		}
	}
	return out
}

type CropDetail struct {
	Crop      model.Crop
	SpaceName string
	Harvests  []model.Harvest
}

// ScannerDetail joins a scanned crop with its space and its harvests.
func ScannerDetail(src Source, crop model.Crop) CropDetail {
	detail := CropDetail{
		Crop:      crop,
		SpaceName: spaceName(spaceNames(src), crop.SpaceID),
	}
	for _, h := range src.Harvests() {
		if h.CropID == crop.ID {
			detail.Harvests = append(detail.Harvests, h)
		}
	}
	return detail
}

func Team(src Source) []model.GardenUser {
	return src.Members()
}

type CatalogEntry struct {
	Item      model.ShopItem
	SalePrice float64
	OnSale    bool
}

// ShopCatalog lists shop items in category, or every item when category is
// empty.
func ShopCatalog(src Source, category model.ShopCategory) []CatalogEntry {
	var out []CatalogEntry
	for _, item := range src.ShopItems() {
		if category != "" && item.Category != category {
			continue
		}
		price, onSale := item.SalePrice()
		out = append(out, CatalogEntry{Item: item, SalePrice: price, OnSale: onSale})
	}
	return out
}

// CategoryCounts returns the number of items per category. Every known
// category is present, with zero when empty.
func CategoryCounts(src Source) map[model.ShopCategory]int {
	counts := make(map[model.ShopCategory]int, len(model.ShopCategories))
	for _, cat := range model.ShopCategories {
		counts[cat] = 0
	}
	for _, item := range src.ShopItems() {
		counts[item.Category]++
	}
	return counts
}

func spaceNames(src Source) map[string]string {
	spaces := src.Spaces()
	names := make(map[string]string, len(spaces))
	for _, s := range spaces {
		if _, ok := names[s.ID]; !ok {
			names[s.ID] = s.Name
		}
	}
	return names
}

func spaceName(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return UnknownSpace
}
