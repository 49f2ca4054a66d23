// Package seed provides the sample records a fresh store starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fekuna/gardentrack/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed data/seed.yaml
var defaultSeed []byte

// DemoAccount is a login account whose password is still in plain text; the
// credential directory hashes it on load.
type DemoAccount struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type Data struct {
	Spaces    []model.GardenSpace `yaml:"spaces"`
	Crops     []model.Crop        `yaml:"crops"`
	Harvests  []model.Harvest     `yaml:"harvests"`
	Members   []model.GardenUser  `yaml:"members"`
	ShopItems []model.ShopItem    `yaml:"shop_items"`
	Accounts  []DemoAccount       `yaml:"accounts"`
}

// Default decodes the embedded sample data.
func Default() (*Data, error) {
	return Parse(defaultSeed)
}

// Load reads seed data from path, or the embedded sample data when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Data) validate() error {
	for _, s := range d.Spaces {
		if !s.Type.IsValid() {
			return fmt.Errorf("seed space %q: unknown type %q", s.ID, s.Type)
		}
	}
	for _, c := range d.Crops {
		if !c.Status.IsValid() {
			return fmt.Errorf("seed crop %q: unknown status %q", c.ID, c.Status)
		}
	}
	for _, h := range d.Harvests {
		if !h.Quality.IsValid() {
			return fmt.Errorf("seed harvest %q: unknown quality %q", h.ID, h.Quality)
		}
	}
	for _, m := range d.Members {
		if !m.Role.IsValid() {
			return fmt.Errorf("seed member %q: unknown role %q", m.ID, m.Role)
		}
	}
	for _, i := range d.ShopItems {
		if !i.Category.IsValid() || !i.Status.IsValid() {
			return fmt.Errorf("seed shop item %q: unknown category or status", i.ID)
		}
		if i.Status != model.StatusSale && i.SalePercent != nil {
			return fmt.Errorf("seed shop item %q: sale percent set while not on sale", i.ID)
		}
	}
	return nil
}
