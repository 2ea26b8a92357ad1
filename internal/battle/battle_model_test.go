package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeroster/pokeroster/internal/domain"
)

func TestNewBattle(t *testing.T) {
	b, err := NewBattle(1, 2, 1, 350.5, 290.0, 60.5, "Close match")
	require.NoError(t, err)

	assert.Equal(t, uint(1), b.Team1TrainerID)
	assert.Equal(t, uint(2), b.Team2TrainerID)
	assert.Equal(t, uint(1), b.WinnerTrainerID)
	assert.Equal(t, 350.5, b.Team1Strength)
	assert.Equal(t, 290.0, b.Team2Strength)
	assert.Equal(t, 60.5, b.VictoryMargin)
	assert.Equal(t, "Close match", b.BattleDetails)
	assert.False(t, b.BattleDate.IsZero())
}

func TestNewBattleSelfBattle(t *testing.T) {
	_, err := NewBattle(1, 1, 1, 100, 100, 0, "")
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.Contains(t, err.Error(), "cannot battle themselves")
}

func TestNewBattleWinnerNotParticipant(t *testing.T) {
	_, err := NewBattle(1, 2, 3, 100, 100, 0, "")
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.Contains(t, err.Error(), "Winner must be one of the battling trainers")
}

func TestNewBattleNegativeStrength(t *testing.T) {
	_, err := NewBattle(1, 2, 1, -1, 100, 0, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Team strength cannot be negative")

	_, err = NewBattle(1, 2, 1, 100, -1, 0, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Team strength cannot be negative")
}

func TestNewBattleNegativeMargin(t *testing.T) {
	_, err := NewBattle(1, 2, 1, 100, 100, -0.5, "")
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.Contains(t, err.Error(), "Victory margin cannot be negative")
}
