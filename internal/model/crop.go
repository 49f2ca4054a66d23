package model

import "time"

type CropStatus string

const (
	CropPlanted   CropStatus = "planted"
	CropGrowing   CropStatus = "growing"
	CropReady     CropStatus = "ready"
	CropHarvested CropStatus = "harvested"
)

// CropStatuses lists every crop status in lifecycle order.
var CropStatuses = []CropStatus{CropPlanted, CropGrowing, CropReady, CropHarvested}

func (s CropStatus) IsValid() bool {
	switch s {
	case CropPlanted, CropGrowing, CropReady, CropHarvested:
		return true
	}
	return false
}

func (s CropStatus) Label() string {
	switch s {
	case CropPlanted:
		return "Planted"
	case CropGrowing:
		return "Growing"
	case CropReady:
		return "Ready"
	case CropHarvested:
		return "Harvested"
	}
	return string(s)
}

// Crop is a planting inside a single garden space. SpaceID is checked when the
// crop is created and never again.
type Crop struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	Variety         string     `json:"variety" yaml:"variety"`
	SpaceID         string     `json:"space_id" yaml:"space_id"`
	PlantedDate     time.Time  `json:"planted_date" yaml:"planted_date"`
	ExpectedHarvest time.Time  `json:"expected_harvest" yaml:"expected_harvest"`
	Status          CropStatus `json:"status" yaml:"status"`
	Notes           string     `json:"notes" yaml:"notes"`
	QRData          string     `json:"qr_data" yaml:"qr_data"`
	ImageURL        *string    `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}
