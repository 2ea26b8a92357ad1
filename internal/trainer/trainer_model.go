package trainer

import (
	"fmt"

	"gorm.io/gorm"
)

// Gender of a trainer.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Region a trainer hails from.
type Region string

const (
	RegionKanto  Region = "kanto"
	RegionJohto  Region = "johto"
	RegionHoenn  Region = "hoenn"
	RegionSinnoh Region = "sinnoh"
	RegionUnova  Region = "unova"
	RegionKalos  Region = "kalos"
	RegionAlola  Region = "alola"
	RegionGalar  Region = "galar"
)

// ParseGender validates a raw string against the known genders.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(s), nil
	}
	return "", fmt.Errorf("invalid gender: %q", s)
}

// ParseRegion validates a raw string against the known regions.
func ParseRegion(s string) (Region, error) {
	switch Region(s) {
	case RegionKanto, RegionJohto, RegionHoenn, RegionSinnoh,
		RegionUnova, RegionKalos, RegionAlola, RegionGalar:
		return Region(s), nil
	}
	return "", fmt.Errorf("invalid region: %q", s)
}

// Trainer is the owning actor for teams, backpacks and battle participation.
type Trainer struct {
	gorm.Model
	Name   string `json:"name" gorm:"not null;index"`
	Gender Gender `json:"gender" gorm:"type:varchar(10)"`
	Region Region `json:"region" gorm:"type:varchar(20);index"`
}
