package team

import (
	"gorm.io/gorm"
)

// MaxTeamSize is the hard cap on active slots per trainer.
const MaxTeamSize = 6

// TeamSlot represents one pokemon's positioned membership in one trainer's
// battle team. Removal flips IsActive instead of deleting the row, so slot
// history is retained for audit.
type TeamSlot struct {
	gorm.Model
	TrainerID uint `json:"trainer_id" gorm:"index;not null"`
	PokemonID uint `json:"pokemon_id" gorm:"index;not null"`
	Position  int  `json:"position" gorm:"not null"`
	IsActive  bool `json:"is_active" gorm:"default:true;index"`
}
