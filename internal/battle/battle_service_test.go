package battle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeroster/pokeroster/internal/domain"
	"github.com/pokeroster/pokeroster/internal/team"
	"github.com/pokeroster/pokeroster/internal/trainer"
)

type battleFixture struct {
	battleRepo  *FakeBattleRepository
	trainerRepo *trainer.FakeTrainerRepository
	teamRepo    *team.FakeTeamRepository
	service     *BattleService
}

func newBattleFixture(t *testing.T) *battleFixture {
	t.Helper()
	f := &battleFixture{
		trainerRepo: trainer.NewFakeTrainerRepository(),
		teamRepo:    team.NewFakeTeamRepository(),
	}
	f.battleRepo = NewFakeBattleRepository(f.trainerRepo)
	f.service = NewBattleService(f.battleRepo, f.trainerRepo, f.teamRepo)
	return f
}

// addTrainer registers a trainer with one active team slot so the
// non-empty-team check passes.
func (f *battleFixture) addTrainer(t *testing.T, name string) uint {
	t.Helper()
	tr := &trainer.Trainer{Name: name, Gender: trainer.GenderMale, Region: trainer.RegionKanto}
	require.NoError(t, f.trainerRepo.CreateTrainer(tr))
	require.NoError(t, f.teamRepo.CreateSlot(&team.TeamSlot{
		TrainerID: tr.ID,
		PokemonID: tr.ID, // any distinct pokemon works here
		Position:  1,
		IsActive:  true,
	}))
	return tr.ID
}

func (f *battleFixture) addTrainerWithoutTeam(t *testing.T, name string) uint {
	t.Helper()
	tr := &trainer.Trainer{Name: name, Gender: trainer.GenderMale, Region: trainer.RegionKanto}
	require.NoError(t, f.trainerRepo.CreateTrainer(tr))
	return tr.ID
}

func TestCreateBattle(t *testing.T) {
	f := newBattleFixture(t)
	ash := f.addTrainer(t, "Ash")
	misty := f.addTrainer(t, "Misty")

	resp, err := f.service.CreateBattle(ash, misty, ash, 350.5, 290.0, 60.5, "Thunderbolt sealed it")
	require.NoError(t, err)

	assert.Equal(t, ash, resp.Team1TrainerID)
	assert.Equal(t, misty, resp.Team2TrainerID)
	assert.Equal(t, ash, resp.WinnerTrainerID)
	assert.Equal(t, "Ash", resp.Team1TrainerName)
	assert.Equal(t, "Misty", resp.Team2TrainerName)
	assert.Equal(t, "Ash", resp.WinnerTrainerName)
	assert.Equal(t, "Thunderbolt sealed it", resp.BattleDetails)
	assert.False(t, resp.BattleDate.IsZero())
}

func TestCreateBattleTrainerNotFound(t *testing.T) {
	f := newBattleFixture(t)
	ash := f.addTrainer(t, "Ash")

	_, err := f.service.CreateBattle(ash, 42, ash, 100, 100, 0, "")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	_, err = f.service.CreateBattle(42, ash, ash, 100, 100, 0, "")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestCreateBattleEmptyTeam(t *testing.T) {
	f := newBattleFixture(t)
	ash := f.addTrainer(t, "Ash")
	gary := f.addTrainerWithoutTeam(t, "Gary")

	_, err := f.service.CreateBattle(ash, gary, ash, 100, 100, 0, "")
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.Contains(t, err.Error(), "Trainer Gary has no Pokemon in their team")

	total, err := f.battleRepo.CountBattles()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreateBattleInvalidRecord(t *testing.T) {
	f := newBattleFixture(t)
	ash := f.addTrainer(t, "Ash")
	misty := f.addTrainer(t, "Misty")

	_, err := f.service.CreateBattle(ash, ash, ash, 100, 100, 0, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot battle themselves")

	brock := f.addTrainer(t, "Brock")
	_, err = f.service.CreateBattle(ash, misty, brock, 100, 100, 0, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Winner must be one of the battling trainers")
}

func TestGetLeaderboardSingleBattle(t *testing.T) {
	f := newBattleFixture(t)
	ash := f.addTrainer(t, "Ash")
	misty := f.addTrainer(t, "Misty")

	_, err := f.service.CreateBattle(ash, misty, ash, 350, 290, 60, "")
	require.NoError(t, err)

	lb, err := f.service.GetLeaderboard()
	require.NoError(t, err)

	assert.Equal(t, 2, lb.TotalTrainers)
	assert.Equal(t, int64(1), lb.TotalBattles)
	require.Len(t, lb.Leaderboard, 2)

	winner := lb.Leaderboard[0]
	assert.Equal(t, ash, winner.TrainerID)
	assert.Equal(t, "Ash", winner.TrainerName)
	assert.Equal(t, int64(1), winner.Wins)
	assert.Equal(t, int64(0), winner.Losses)
	assert.Equal(t, int64(1), winner.TotalBattles)
	assert.Equal(t, 100.0, winner.WinRate)

	loser := lb.Leaderboard[1]
	assert.Equal(t, misty, loser.TrainerID)
	assert.Equal(t, int64(0), loser.Wins)
	assert.Equal(t, int64(1), loser.Losses)
	assert.Equal(t, int64(1), loser.TotalBattles)
	assert.Equal(t, 0.0, loser.WinRate)
}

// A trainer appearing as team1 in one battle and team2 in another must
// be counted once per battle, never doubled.
func TestGetLeaderboardCountsEachBattleOnce(t *testing.T) {
	f := newBattleFixture(t)
	ash := f.addTrainer(t, "Ash")
	misty := f.addTrainer(t, "Misty")
	brock := f.addTrainer(t, "Brock")

	_, err := f.service.CreateBattle(ash, misty, ash, 300, 200, 100, "")
	require.NoError(t, err)
	_, err = f.service.CreateBattle(brock, ash, ash, 250, 310, 60, "")
	require.NoError(t, err)

	lb, err := f.service.GetLeaderboard()
	require.NoError(t, err)

	byID := make(map[uint]LeaderboardEntry)
	for _, e := range lb.Leaderboard {
		byID[e.TrainerID] = e
	}
	assert.Equal(t, int64(2), byID[ash].TotalBattles)
	assert.Equal(t, int64(2), byID[ash].Wins)
	assert.Equal(t, int64(1), byID[misty].TotalBattles)
	assert.Equal(t, int64(1), byID[brock].TotalBattles)
	assert.Equal(t, int64(2), lb.TotalBattles)
}

func TestGetLeaderboardInvariants(t *testing.T) {
	f := newBattleFixture(t)
	trainers := make([]uint, 4)
	for i := range trainers {
		trainers[i] = f.addTrainer(t, fmt.Sprintf("Trainer %d", i+1))
	}

	pairs := [][3]int{{0, 1, 0}, {2, 3, 3}, {0, 2, 2}, {1, 3, 1}, {0, 3, 0}}
	for _, p := range pairs {
		_, err := f.service.CreateBattle(trainers[p[0]], trainers[p[1]], trainers[p[2]], 100, 100, 10, "")
		require.NoError(t, err)
	}

	lb, err := f.service.GetLeaderboard()
	require.NoError(t, err)

	var totalWins int64
	for i, e := range lb.Leaderboard {
		totalWins += e.Wins
		assert.Equal(t, e.TotalBattles, e.Wins+e.Losses)
		if i > 0 {
			prev := lb.Leaderboard[i-1]
			assert.GreaterOrEqual(t, prev.Wins, e.Wins)
			if prev.Wins == e.Wins {
				assert.GreaterOrEqual(t, prev.WinRate, e.WinRate)
			}
		}
	}
	assert.Equal(t, lb.TotalBattles, totalWins)
}

func TestGetLeaderboardExcludesTrainersWithoutBattles(t *testing.T) {
	f := newBattleFixture(t)
	ash := f.addTrainer(t, "Ash")
	misty := f.addTrainer(t, "Misty")
	f.addTrainer(t, "Brock")

	_, err := f.service.CreateBattle(ash, misty, misty, 100, 120, 20, "")
	require.NoError(t, err)

	lb, err := f.service.GetLeaderboard()
	require.NoError(t, err)
	assert.Equal(t, 2, lb.TotalTrainers)
	for _, e := range lb.Leaderboard {
		assert.NotEqual(t, "Brock", e.TrainerName)
	}
}

func TestGetTrainerBattlesNewestFirst(t *testing.T) {
	f := newBattleFixture(t)
	ash := f.addTrainer(t, "Ash")
	misty := f.addTrainer(t, "Misty")
	brock := f.addTrainer(t, "Brock")

	first, err := f.service.CreateBattle(ash, misty, ash, 100, 90, 10, "")
	require.NoError(t, err)
	second, err := f.service.CreateBattle(brock, ash, brock, 200, 150, 50, "")
	require.NoError(t, err)
	_, err = f.service.CreateBattle(misty, brock, misty, 100, 90, 10, "")
	require.NoError(t, err)

	record, err := f.service.GetTrainerBattles(ash)
	require.NoError(t, err)
	assert.Equal(t, "Ash", record.TrainerName)
	assert.Equal(t, int64(1), record.Wins)
	assert.Equal(t, int64(1), record.Losses)
	assert.Equal(t, 2, record.TotalBattles)
	require.Len(t, record.Battles, 2)
	assert.Equal(t, second.ID, record.Battles[0].ID)
	assert.Equal(t, first.ID, record.Battles[1].ID)
	assert.Equal(t, "Brock", record.Battles[0].Team1TrainerName)
}

func TestGetTrainerBattlesTrainerNotFound(t *testing.T) {
	f := newBattleFixture(t)

	_, err := f.service.GetTrainerBattles(42)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestGetAllBattlesPagination(t *testing.T) {
	f := newBattleFixture(t)
	ash := f.addTrainer(t, "Ash")
	misty := f.addTrainer(t, "Misty")

	for i := 0; i < 5; i++ {
		_, err := f.service.CreateBattle(ash, misty, ash, 100, 90, 10, "")
		require.NoError(t, err)
	}

	page, total, err := f.service.GetAllBattles(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	// newest first: skipping 2 lands on the third most recent
	assert.Equal(t, uint(3), page[0].ID)
}

func TestDeleteBattle(t *testing.T) {
	f := newBattleFixture(t)
	ash := f.addTrainer(t, "Ash")
	misty := f.addTrainer(t, "Misty")

	resp, err := f.service.CreateBattle(ash, misty, ash, 100, 90, 10, "")
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteBattle(resp.ID))

	total, err := f.battleRepo.CountBattles()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestDeleteBattleNotFound(t *testing.T) {
	f := newBattleFixture(t)

	err := f.service.DeleteBattle(42)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
