package pokemon

import (
	"fmt"

	"github.com/pokeroster/pokeroster/internal/models"
	"gorm.io/gorm"
)

// MaxMoves is the most moves a Pokemon can know at once.
const MaxMoves = 4

// PokemonType is one of the canonical elemental types.
type PokemonType string

const (
	TypeNormal   PokemonType = "normal"
	TypeFire     PokemonType = "fire"
	TypeWater    PokemonType = "water"
	TypeGrass    PokemonType = "grass"
	TypeElectric PokemonType = "electric"
	TypeIce      PokemonType = "ice"
	TypeFighting PokemonType = "fighting"
	TypePoison   PokemonType = "poison"
	TypeGround   PokemonType = "ground"
	TypeFlying   PokemonType = "flying"
	TypePsychic  PokemonType = "psychic"
	TypeBug      PokemonType = "bug"
	TypeRock     PokemonType = "rock"
	TypeGhost    PokemonType = "ghost"
	TypeDragon   PokemonType = "dragon"
	TypeDark     PokemonType = "dark"
	TypeSteel    PokemonType = "steel"
	TypeFairy    PokemonType = "fairy"
)

// Nature is a Pokemon's temperament tag.
type Nature string

const (
	NatureHardy   Nature = "hardy"
	NatureAdamant Nature = "adamant"
	NatureBrave   Nature = "brave"
	NatureBold    Nature = "bold"
	NatureCalm    Nature = "calm"
	NatureImpish  Nature = "impish"
	NatureJolly   Nature = "jolly"
	NatureModest  Nature = "modest"
	NatureTimid   Nature = "timid"
)

// ParseType validates a raw string against the known elemental types.
func ParseType(s string) (PokemonType, error) {
	switch PokemonType(s) {
	case TypeNormal, TypeFire, TypeWater, TypeGrass, TypeElectric, TypeIce,
		TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic,
		TypeBug, TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel, TypeFairy:
		return PokemonType(s), nil
	}
	return "", fmt.Errorf("invalid pokemon type: %q", s)
}

// ParseNature validates a raw string against the known natures.
func ParseNature(s string) (Nature, error) {
	switch Nature(s) {
	case NatureHardy, NatureAdamant, NatureBrave, NatureBold, NatureCalm,
		NatureImpish, NatureJolly, NatureModest, NatureTimid:
		return Nature(s), nil
	}
	return "", fmt.Errorf("invalid pokemon nature: %q", s)
}

// Pokemon is a collectible creature owned independently of any trainer;
// it joins a trainer's team only through a team slot.
type Pokemon struct {
	gorm.Model
	Name          string             `json:"name" gorm:"not null;index"`
	TypePrimary   PokemonType        `json:"type_primary" gorm:"type:varchar(20);index"`
	TypeSecondary *PokemonType       `json:"type_secondary,omitempty" gorm:"type:varchar(20)"`
	Moves         models.StringSlice `json:"moves" gorm:"type:json"`
	Nature        Nature             `json:"nature" gorm:"type:varchar(20)"`
	Level         int                `json:"level" gorm:"default:1"`
}

// Validate checks the level range and move-list cap before persistence.
func (p *Pokemon) Validate() error {
	if p.Level < 1 || p.Level > 100 {
		return fmt.Errorf("level must be between 1 and 100, got %d", p.Level)
	}
	if len(p.Moves) > MaxMoves {
		return fmt.Errorf("a pokemon can know at most %d moves, got %d", MaxMoves, len(p.Moves))
	}
	return nil
}
