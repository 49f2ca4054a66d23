package view

import (
	"testing"

	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/seed"
	"github.com/fekuna/gardentrack/internal/store"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *store.Store {
	t.Helper()
	d, err := seed.Default()
	require.NoError(t, err)
	return store.New(store.WithSeed(d))
}

func TestDashboardSeeded(t *testing.T) {
	sum := Dashboard(seeded(t))

	assert.Equal(t, 3, sum.Spaces)
	assert.Equal(t, 4, sum.ActiveCrops)
	assert.Equal(t, 5, sum.TotalCrops)
	assert.Equal(t, 22.0, sum.TotalYield)
	assert.Equal(t, 3, sum.HarvestCount)
	assert.Equal(t, 3, sum.Members)

	want := []StatusShare{
		{Status: model.CropPlanted, Count: 1, Percent: 20},
		{Status: model.CropGrowing, Count: 2, Percent: 40},
		{Status: model.CropReady, Count: 1, Percent: 20},
		{Status: model.CropHarvested, Count: 1, Percent: 20},
	}
	if diff := cmp.Diff(want, sum.StatusShares, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("status shares mismatch (-want +got):\n%s", diff)
	}

	ids := make([]string, 0, len(sum.RecentHarvests))
	for _, h := range sum.RecentHarvests {
		ids = append(ids, h.ID)
	}
	assert.Equal(t, []string{"3", "2", "1"}, ids)
}

func TestDashboardEmpty(t *testing.T) {
	sum := Dashboard(store.New())

	assert.Zero(t, sum.TotalCrops)
	assert.Empty(t, sum.RecentHarvests)
	for _, share := range sum.StatusShares {
		assert.Zero(t, share.Percent)
	}
}

func TestDashboardKeepsFiveMostRecent(t *testing.T) {
	s := store.New()
	for i := 0; i < 7; i++ {
		s.AddHarvest(model.Harvest{Quantity: float64(i)})
	}

	sum := Dashboard(s)

	require.Len(t, sum.RecentHarvests, 5)
	assert.Equal(t, 6.0, sum.RecentHarvests[0].Quantity)
	assert.Equal(t, 2.0, sum.RecentHarvests[4].Quantity)
	assert.Equal(t, 21.0, sum.TotalYield)
}

func TestSpaceRowsCountCrops(t *testing.T) {
	rows := SpaceRows(seeded(t))

	got := map[string]int{}
	for _, r := range rows {
		got[r.Space.ID] = r.CropCount
	}
	assert.Equal(t, map[string]int{"1": 2, "2": 1, "3": 2}, got)
}

func TestCropRowsUnknownSpace(t *testing.T) {
	s := seeded(t)
	mint := s.AddCrop(model.Crop{Name: "Mint", SpaceID: "2", Status: model.CropPlanted})

	before := CropRows(s)
	assert.Equal(t, "Herb Corner", before[len(before)-1].SpaceName)

	s.RemoveSpace("2")

	after := CropRows(s)
	require.Len(t, after, 6)
	last := after[len(after)-1]
	assert.Equal(t, mint.ID, last.Crop.ID)
	assert.Equal(t, UnknownSpace, last.SpaceName)
}

func TestHarvestCandidatesSkipHarvested(t *testing.T) {
	for _, c := range HarvestCandidates(seeded(t)) {
		assert.NotEqual(t, model.CropHarvested, c.Status)
	}
	assert.Len(t, HarvestCandidates(seeded(t)), 4)
}

func TestScannerDetail(t *testing.T) {
	s := seeded(t)
	crop, ok := s.GetCropByQR("CROP-005-CUCUMBER-ENGLISH")
	require.True(t, ok)

	detail := ScannerDetail(s, crop)

	assert.Equal(t, "Greenhouse A", detail.SpaceName)
	require.Len(t, detail.Harvests, 1)
	assert.Equal(t, 12.0, detail.Harvests[0].Quantity)
}

func TestShopCatalog(t *testing.T) {
	s := seeded(t)

	all := ShopCatalog(s, "")
	require.Len(t, all, 3)

	seedlings := ShopCatalog(s, model.CategorySeedlings)
	require.Len(t, seedlings, 1)
	assert.True(t, seedlings[0].OnSale)
	assert.InDelta(t, 3.0, seedlings[0].SalePrice, 1e-9)

	produce := ShopCatalog(s, model.CategoryProduce)
	require.Len(t, produce, 1)
	assert.False(t, produce[0].OnSale)

	counts := CategoryCounts(s)
	assert.Equal(t, map[model.ShopCategory]int{
		model.CategoryProduce:   1,
		model.CategorySeedlings: 1,
		model.CategoryInputs:    1,
	}, counts)
}

func TestTeam(t *testing.T) {
	team := Team(seeded(t))
	require.Len(t, team, 3)
	assert.Equal(t, "AG", team[0].Avatar)
}
