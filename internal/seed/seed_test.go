package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fekuna/gardentrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.Len(t, d.Spaces, 3)
	assert.Len(t, d.Crops, 5)
	assert.Len(t, d.Harvests, 3)
	assert.Len(t, d.Members, 3)
	assert.Len(t, d.ShopItems, 3)
	assert.Len(t, d.Accounts, 2)

	assert.Equal(t, "Herb Corner", d.Spaces[1].Name)
	assert.Equal(t, model.SpaceRaisedBed, d.Spaces[1].Type)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), d.Spaces[1].CreatedAt.UTC())
	assert.Equal(t, "CROP-001-TOMATO-ROMA", d.Crops[0].QRData)
	assert.Equal(t, 12.0, d.Harvests[0].Quantity)
	assert.Equal(t, "admin@gardentrack.co.za", d.Accounts[0].Email)

	sale := d.ShopItems[1]
	require.NotNil(t, sale.SalePercent)
	assert.Equal(t, 25.0, *sale.SalePercent)
	assert.Nil(t, d.ShopItems[0].SalePercent)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
spaces:
  - id: a
    name: Balcony
    type: container
`), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	require.Len(t, d.Spaces, 1)
	assert.Equal(t, model.SpaceContainer, d.Spaces[0].Type)
	assert.Empty(t, d.Crops)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseRejectsUnknownEnums(t *testing.T) {
	cases := map[string]string{
		"space type":  "spaces:\n  - id: a\n    type: field\n",
		"crop status": "crops:\n  - id: a\n    status: wilting\n",
		"quality":     "harvests:\n  - id: a\n    quality: great\n",
		"role":        "members:\n  - id: a\n    role: admin\n",
		"shop status": "shop_items:\n  - id: a\n    category: produce\n    status: gone\n",
		"stray sale":  "shop_items:\n  - id: a\n    category: produce\n    status: in-stock\n    sale_percent: 5\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}
