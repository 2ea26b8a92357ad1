package item

import (
	"fmt"

	"gorm.io/gorm"
)

// ItemType classifies a catalog item.
type ItemType string

const (
	TypePokeball ItemType = "pokeball"
	TypePotion   ItemType = "potion"
	TypeAntidote ItemType = "antidote"
	TypeBerry    ItemType = "berry"
	TypeRevive   ItemType = "revive"
	TypeStone    ItemType = "stone"
	TypeTM       ItemType = "tm"
)

// ParseItemType validates a raw string against the known item types.
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case TypePokeball, TypePotion, TypeAntidote, TypeBerry, TypeRevive, TypeStone, TypeTM:
		return ItemType(s), nil
	}
	return "", fmt.Errorf("invalid item type: %q", s)
}

// Item is a catalog entry trainers can hold in their backpacks.
type Item struct {
	gorm.Model
	Name        string   `json:"name" gorm:"not null;index"`
	Type        ItemType `json:"type" gorm:"type:varchar(20);index"`
	Description string   `json:"description"`
	Price       int      `json:"price" gorm:"default:0"`
}
