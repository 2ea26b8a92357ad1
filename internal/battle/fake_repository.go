package battle

import (
	"github.com/pokeroster/pokeroster/internal/trainer"
)

// FakeBattleRepository is a stateful in-memory implementation of
// BattleRepository used by service tests. It needs the trainer fake to
// resolve names in leaderboard rows the way the SQL join does.
type FakeBattleRepository struct {
	Trainers *trainer.FakeTrainerRepository

	battles []*Battle
	nextID  uint
}

func NewFakeBattleRepository(trainers *trainer.FakeTrainerRepository) *FakeBattleRepository {
	return &FakeBattleRepository{Trainers: trainers, nextID: 1}
}

func (f *FakeBattleRepository) CreateBattle(b *Battle) error {
	b.ID = f.nextID
	f.nextID++
	copied := *b
	f.battles = append(f.battles, &copied)
	return nil
}

func (f *FakeBattleRepository) GetBattleByID(id uint) (*Battle, error) {
	for _, b := range f.battles {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *FakeBattleRepository) GetAllBattles(skip, limit int) ([]Battle, int64, error) {
	newest := f.newestFirst()
	total := int64(len(newest))
	if skip >= len(newest) {
		return nil, total, nil
	}
	end := skip + limit
	if end > len(newest) {
		end = len(newest)
	}
	return newest[skip:end], total, nil
}

func (f *FakeBattleRepository) GetBattlesByTrainer(trainerID uint) ([]Battle, error) {
	var result []Battle
	for _, b := range f.newestFirst() {
		if b.Team1TrainerID == trainerID || b.Team2TrainerID == trainerID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *FakeBattleRepository) GetTrainerWins(trainerID uint) (int64, error) {
	var count int64
	for _, b := range f.battles {
		if b.WinnerTrainerID == trainerID {
			count++
		}
	}
	return count, nil
}

func (f *FakeBattleRepository) GetTrainerLosses(trainerID uint) (int64, error) {
	var count int64
	for _, b := range f.battles {
		participant := b.Team1TrainerID == trainerID || b.Team2TrainerID == trainerID
		if participant && b.WinnerTrainerID != trainerID {
			count++
		}
	}
	return count, nil
}

func (f *FakeBattleRepository) CountBattles() (int64, error) {
	return int64(len(f.battles)), nil
}

// GetLeaderboardRows mirrors the production UNION ALL aggregation: one
// appearance per battle per participant, one win per battle for the winner.
func (f *FakeBattleRepository) GetLeaderboardRows() ([]LeaderboardRow, error) {
	wins := make(map[uint]int64)
	totals := make(map[uint]int64)
	for _, b := range f.battles {
		totals[b.Team1TrainerID]++
		totals[b.Team2TrainerID]++
		wins[b.WinnerTrainerID]++
	}

	rows := make([]LeaderboardRow, 0, len(totals))
	for trainerID, total := range totals {
		t, err := f.Trainers.GetTrainerByID(trainerID)
		if err != nil {
			return nil, err
		}
		name := ""
		if t != nil {
			name = t.Name
		}
		rows = append(rows, LeaderboardRow{
			TrainerID:    trainerID,
			TrainerName:  name,
			Wins:         wins[trainerID],
			TotalBattles: total,
		})
	}
	return rows, nil
}

func (f *FakeBattleRepository) DeleteBattle(id uint) error {
	kept := f.battles[:0]
	for _, b := range f.battles {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	f.battles = kept
	return nil
}

// newestFirst returns copies in reverse insertion order; inserts are
// chronological so this matches the battle_date desc ordering.
func (f *FakeBattleRepository) newestFirst() []Battle {
	result := make([]Battle, 0, len(f.battles))
	for i := len(f.battles) - 1; i >= 0; i-- {
		result = append(result, *f.battles[i])
	}
	return result
}
