package dto

import (
	"time"

	"github.com/fekuna/gardentrack/internal/model"
)

const DefaultUnit = "lbs"

type RecordHarvestInput struct {
	CropID      string
	Quantity    *float64 // required
	Unit        string   // empty means DefaultUnit
	Quality     model.HarvestQuality
	HarvestDate time.Time // zero means today
	Notes       string
}
