package model

import "time"

type SpaceType string

const (
	SpaceRaisedBed  SpaceType = "raised-bed"
	SpaceGreenhouse SpaceType = "greenhouse"
	SpacePlot       SpaceType = "plot"
	SpaceContainer  SpaceType = "container"
	SpaceIndoor     SpaceType = "indoor"
)

// SpaceTypes lists every space type in display order.
var SpaceTypes = []SpaceType{SpaceRaisedBed, SpaceGreenhouse, SpacePlot, SpaceContainer, SpaceIndoor}

func (t SpaceType) IsValid() bool {
	switch t {
	case SpaceRaisedBed, SpaceGreenhouse, SpacePlot, SpaceContainer, SpaceIndoor:
		return true
	}
	return false
}

func (t SpaceType) Label() string {
	switch t {
	case SpaceRaisedBed:
		return "Raised Bed"
	case SpaceGreenhouse:
		return "Greenhouse"
	case SpacePlot:
		return "Plot"
	case SpaceContainer:
		return "Container"
	case SpaceIndoor:
		return "Indoor"
	}
	return string(t)
}

// GardenSpace is a growing area that crops are planted in.
type GardenSpace struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Size        string    `json:"size" yaml:"size"`
	Type        SpaceType `json:"type" yaml:"type"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}
