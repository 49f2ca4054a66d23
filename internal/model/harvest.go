package model

import "time"

type HarvestQuality string

const (
	QualityExcellent HarvestQuality = "excellent"
	QualityGood      HarvestQuality = "good"
	QualityFair      HarvestQuality = "fair"
	QualityPoor      HarvestQuality = "poor"
)

var HarvestQualities = []HarvestQuality{QualityExcellent, QualityGood, QualityFair, QualityPoor}

func (q HarvestQuality) IsValid() bool {
	switch q {
	case QualityExcellent, QualityGood, QualityFair, QualityPoor:
		return true
	}
	return false
}

// Harvest records produce taken from a crop. CropName and SpaceName are copied
// when the harvest is recorded and are not kept in sync afterwards.
type Harvest struct {
	ID          string         `json:"id" yaml:"id"`
	CropID      string         `json:"crop_id" yaml:"crop_id"`
	CropName    string         `json:"crop_name" yaml:"crop_name"`
	SpaceName   string         `json:"space_name" yaml:"space_name"`
	Quantity    float64        `json:"quantity" yaml:"quantity"`
	Unit        string         `json:"unit" yaml:"unit"`
	HarvestDate time.Time      `json:"harvest_date" yaml:"harvest_date"`
	Quality     HarvestQuality `json:"quality" yaml:"quality"`
	Notes       string         `json:"notes" yaml:"notes"`
}
