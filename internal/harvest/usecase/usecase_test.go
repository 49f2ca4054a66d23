package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/fekuna/gardentrack/internal/harvest/dto"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/seed"
	"github.com/fekuna/gardentrack/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(v float64) *float64 { return &v }

func seeded(t *testing.T) *store.Store {
	t.Helper()
	d, err := seed.Default()
	require.NoError(t, err)
	return store.New(store.WithSeed(d))
}

func TestRecordHarvestDenormalizesNames(t *testing.T) {
	s := seeded(t)
	uc := NewHarvestUseCase(s, logger.NewNop())

	h, err := uc.RecordHarvest(context.Background(), &dto.RecordHarvestInput{
		CropID:   "1",
		Quantity: qty(4.5),
	})
	require.NoError(t, err)

	assert.Equal(t, "Tomato", h.CropName)
	assert.Equal(t, "Main Veggie Patch", h.SpaceName)
	assert.Equal(t, "lbs", h.Unit)
	assert.Equal(t, model.QualityGood, h.Quality)
	assert.False(t, h.HarvestDate.IsZero())
	assert.Len(t, s.Harvests(), 4)

	// Removing the space later leaves the record as written.
	s.RemoveSpace("1")
	assert.Equal(t, "Main Veggie Patch", s.Harvests()[3].SpaceName)
}

func TestRecordHarvestZeroQuantity(t *testing.T) {
	uc := NewHarvestUseCase(seeded(t), logger.NewNop())

	h, err := uc.RecordHarvest(context.Background(), &dto.RecordHarvestInput{CropID: "2", Quantity: qty(0), Unit: "kg"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, h.Quantity)
	assert.Equal(t, "kg", h.Unit)
}

func TestRecordHarvestValidation(t *testing.T) {
	tests := []struct {
		name  string
		input dto.RecordHarvestInput
	}{
		{name: "no crop", input: dto.RecordHarvestInput{Quantity: qty(1)}},
		{name: "no quantity", input: dto.RecordHarvestInput{CropID: "1"}},
		{name: "negative quantity", input: dto.RecordHarvestInput{CropID: "1", Quantity: qty(-1)}},
		{name: "nan quantity", input: dto.RecordHarvestInput{CropID: "1", Quantity: qty(math.NaN())}},
		{name: "unknown crop", input: dto.RecordHarvestInput{CropID: "99", Quantity: qty(1)}},
		{name: "already harvested", input: dto.RecordHarvestInput{CropID: "5", Quantity: qty(1)}},
		{name: "unknown quality", input: dto.RecordHarvestInput{CropID: "1", Quantity: qty(1), Quality: "stellar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seeded(t)
			uc := NewHarvestUseCase(s, logger.NewNop())

			_, err := uc.RecordHarvest(context.Background(), &tt.input)
			assert.ErrorIs(t, err, model.ErrValidation)
			assert.Len(t, s.Harvests(), 3)
		})
	}
}

func TestRecordHarvestUnknownSpace(t *testing.T) {
	s := store.New()
	c := s.AddCrop(model.Crop{Name: "Mint", SpaceID: "gone", Status: model.CropReady})
	uc := NewHarvestUseCase(s, logger.NewNop())

	h, err := uc.RecordHarvest(context.Background(), &dto.RecordHarvestInput{CropID: c.ID, Quantity: qty(1)})
	require.NoError(t, err)
	assert.Empty(t, h.SpaceName)
}
