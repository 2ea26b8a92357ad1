package battle

import (
	"time"

	"github.com/pokeroster/pokeroster/internal/domain"
	"gorm.io/gorm"
)

// Battle is an immutable record of one resolved contest between two
// trainers' teams. Rows are only ever created through NewBattle and
// hard-deleted; there is no update path.
type Battle struct {
	gorm.Model
	Team1TrainerID  uint      `json:"team1_trainer_id" gorm:"index;not null"`
	Team2TrainerID  uint      `json:"team2_trainer_id" gorm:"index;not null"`
	WinnerTrainerID uint      `json:"winner_trainer_id" gorm:"index;not null"`
	Team1Strength   float64   `json:"team1_strength"`
	Team2Strength   float64   `json:"team2_strength"`
	VictoryMargin   float64   `json:"victory_margin"`
	BattleDate      time.Time `json:"battle_date" gorm:"index"`
	BattleDetails   string    `json:"battle_details,omitempty"`
}

// NewBattle builds a battle record, enforcing the construction-time
// invariants: distinct trainers, winner among the participants, and
// non-negative strengths and margin.
func NewBattle(team1TrainerID, team2TrainerID, winnerTrainerID uint, team1Strength, team2Strength, victoryMargin float64, details string) (*Battle, error) {
	if team1TrainerID == team2TrainerID {
		return nil, domain.NewRuleViolation("A trainer cannot battle themselves")
	}
	if winnerTrainerID != team1TrainerID && winnerTrainerID != team2TrainerID {
		return nil, domain.NewRuleViolation("Winner must be one of the battling trainers")
	}
	if team1Strength < 0 || team2Strength < 0 {
		return nil, domain.NewRuleViolation("Team strength cannot be negative")
	}
	if victoryMargin < 0 {
		return nil, domain.NewRuleViolation("Victory margin cannot be negative")
	}

	return &Battle{
		Team1TrainerID:  team1TrainerID,
		Team2TrainerID:  team2TrainerID,
		WinnerTrainerID: winnerTrainerID,
		Team1Strength:   team1Strength,
		Team2Strength:   team2Strength,
		VictoryMargin:   victoryMargin,
		BattleDate:      time.Now().UTC(),
		BattleDetails:   details,
	}, nil
}
