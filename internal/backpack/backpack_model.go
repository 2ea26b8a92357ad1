package backpack

import (
	"gorm.io/gorm"
)

// MaxItemQuantity is the most of one item a trainer can carry.
const MaxItemQuantity = 999

// BackpackEntry records how many of a catalog item a trainer holds.
// Quantity stays within [1, 999]; an entry that would reach zero is
// deleted rather than kept around.
type BackpackEntry struct {
	gorm.Model
	TrainerID uint `json:"trainer_id" gorm:"index;not null"`
	ItemID    uint `json:"item_id" gorm:"index;not null"`
	Quantity  int  `json:"quantity" gorm:"not null"`
}
