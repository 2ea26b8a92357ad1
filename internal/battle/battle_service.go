package battle

import (
	"math"
	"sort"
	"time"

	"github.com/pokeroster/pokeroster/internal/domain"
	"github.com/pokeroster/pokeroster/internal/team"
	"github.com/pokeroster/pokeroster/internal/trainer"
)

// BattleResponse is one battle row with all three trainer names resolved.
type BattleResponse struct {
	ID                uint      `json:"id"`
	Team1TrainerID    uint      `json:"team1_trainer_id"`
	Team2TrainerID    uint      `json:"team2_trainer_id"`
	WinnerTrainerID   uint      `json:"winner_trainer_id"`
	Team1Strength     float64   `json:"team1_strength"`
	Team2Strength     float64   `json:"team2_strength"`
	VictoryMargin     float64   `json:"victory_margin"`
	BattleDate        time.Time `json:"battle_date"`
	BattleDetails     string    `json:"battle_details,omitempty"`
	Team1TrainerName  string    `json:"team1_trainer_name"`
	Team2TrainerName  string    `json:"team2_trainer_name"`
	WinnerTrainerName string    `json:"winner_trainer_name"`
}

// TrainerBattlesResponse is one trainer's battle record: win/loss counts
// plus the full participation history, newest first.
type TrainerBattlesResponse struct {
	TrainerID    uint             `json:"trainer_id"`
	TrainerName  string           `json:"trainer_name"`
	Wins         int64            `json:"wins"`
	Losses       int64            `json:"losses"`
	TotalBattles int              `json:"total_battles"`
	Battles      []BattleResponse `json:"battles"`
}

// LeaderboardEntry is one trainer's derived win/loss summary.
type LeaderboardEntry struct {
	TrainerID    uint    `json:"trainer_id"`
	TrainerName  string  `json:"trainer_name"`
	Wins         int64   `json:"wins"`
	Losses       int64   `json:"losses"`
	TotalBattles int64   `json:"total_battles"`
	WinRate      float64 `json:"win_rate"`
}

// LeaderboardResponse is the derived leaderboard. TotalBattles counts each
// battle once, not once per participant.
type LeaderboardResponse struct {
	Leaderboard   []LeaderboardEntry `json:"leaderboard"`
	TotalTrainers int                `json:"total_trainers"`
	TotalBattles  int64              `json:"total_battles"`
}

// BattleService validates and persists battle records and derives the
// leaderboard from the full battle history.
type BattleService struct {
	battleRepo  BattleRepository
	trainerRepo trainer.TrainerRepository
	teamRepo    team.TeamRepository
}

// NewBattleService creates a new BattleService.
func NewBattleService(battleRepo BattleRepository, trainerRepo trainer.TrainerRepository, teamRepo team.TeamRepository) *BattleService {
	return &BattleService{
		battleRepo:  battleRepo,
		trainerRepo: trainerRepo,
		teamRepo:    teamRepo,
	}
}

// CreateBattle appends an immutable battle row. Both participants must
// exist and field a non-empty team; no team or backpack state is touched.
func (s *BattleService) CreateBattle(team1TrainerID, team2TrainerID, winnerTrainerID uint, team1Strength, team2Strength, victoryMargin float64, details string) (*BattleResponse, error) {
	team1Trainer, err := s.trainerRepo.GetTrainerByID(team1TrainerID)
	if err != nil {
		return nil, err
	}
	if team1Trainer == nil {
		return nil, domain.NewNotFound("Trainer", team1TrainerID)
	}

	team2Trainer, err := s.trainerRepo.GetTrainerByID(team2TrainerID)
	if err != nil {
		return nil, err
	}
	if team2Trainer == nil {
		return nil, domain.NewNotFound("Trainer", team2TrainerID)
	}

	winnerTrainer, err := s.trainerRepo.GetTrainerByID(winnerTrainerID)
	if err != nil {
		return nil, err
	}
	if winnerTrainer == nil {
		return nil, domain.NewNotFound("Trainer", winnerTrainerID)
	}

	team1Size, err := s.teamRepo.CountActiveSlots(team1TrainerID)
	if err != nil {
		return nil, err
	}
	if team1Size == 0 {
		return nil, domain.NewRuleViolation("Trainer %s has no Pokemon in their team", team1Trainer.Name)
	}

	team2Size, err := s.teamRepo.CountActiveSlots(team2TrainerID)
	if err != nil {
		return nil, err
	}
	if team2Size == 0 {
		return nil, domain.NewRuleViolation("Trainer %s has no Pokemon in their team", team2Trainer.Name)
	}

	battle, err := NewBattle(team1TrainerID, team2TrainerID, winnerTrainerID, team1Strength, team2Strength, victoryMargin, details)
	if err != nil {
		return nil, err
	}

	if err := s.battleRepo.CreateBattle(battle); err != nil {
		return nil, err
	}

	resp := s.toResponse(*battle)
	resp.Team1TrainerName = team1Trainer.Name
	resp.Team2TrainerName = team2Trainer.Name
	resp.WinnerTrainerName = winnerTrainer.Name
	return &resp, nil
}

// GetAllBattles returns the battle history newest first, with trainer names
// resolved, plus the total row count for pagination.
func (s *BattleService) GetAllBattles(skip, limit int) ([]BattleResponse, int64, error) {
	battles, total, err := s.battleRepo.GetAllBattles(skip, limit)
	if err != nil {
		return nil, 0, err
	}

	responses, err := s.resolveNames(battles)
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

// GetTrainerBattles returns the trainer's battle record: win and loss
// counts plus every battle they took part in, newest first.
func (s *BattleService) GetTrainerBattles(trainerID uint) (*TrainerBattlesResponse, error) {
	t, err := s.trainerRepo.GetTrainerByID(trainerID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("Trainer", trainerID)
	}

	battles, err := s.battleRepo.GetBattlesByTrainer(trainerID)
	if err != nil {
		return nil, err
	}
	responses, err := s.resolveNames(battles)
	if err != nil {
		return nil, err
	}

	wins, err := s.battleRepo.GetTrainerWins(trainerID)
	if err != nil {
		return nil, err
	}
	losses, err := s.battleRepo.GetTrainerLosses(trainerID)
	if err != nil {
		return nil, err
	}

	return &TrainerBattlesResponse{
		TrainerID:    trainerID,
		TrainerName:  t.Name,
		Wins:         wins,
		Losses:       losses,
		TotalBattles: len(battles),
		Battles:      responses,
	}, nil
}

// GetLeaderboard derives per-trainer statistics from the full battle
// history. Trainers with zero battles are excluded; ordering is wins
// descending with win rate as the tie breaker.
func (s *BattleService) GetLeaderboard() (*LeaderboardResponse, error) {
	rows, err := s.battleRepo.GetLeaderboardRows()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		if row.TotalBattles == 0 {
			continue
		}
		winRate := float64(row.Wins) / float64(row.TotalBattles) * 100
		entries = append(entries, LeaderboardEntry{
			TrainerID:    row.TrainerID,
			TrainerName:  row.TrainerName,
			Wins:         row.Wins,
			Losses:       row.TotalBattles - row.Wins,
			TotalBattles: row.TotalBattles,
			WinRate:      math.Round(winRate*100) / 100,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		return entries[i].WinRate > entries[j].WinRate
	})

	totalBattles, err := s.battleRepo.CountBattles()
	if err != nil {
		return nil, err
	}

	return &LeaderboardResponse{
		Leaderboard:   entries,
		TotalTrainers: len(entries),
		TotalBattles:  totalBattles,
	}, nil
}

// DeleteBattle hard-deletes one battle row.
func (s *BattleService) DeleteBattle(battleID uint) error {
	battle, err := s.battleRepo.GetBattleByID(battleID)
	if err != nil {
		return err
	}
	if battle == nil {
		return domain.NewNotFound("Battle", battleID)
	}
	return s.battleRepo.DeleteBattle(battleID)
}

func (s *BattleService) resolveNames(battles []Battle) ([]BattleResponse, error) {
	// Trainer names are resolved per battle; missing trainers (deleted
	// after the fact) leave the name empty rather than failing the read.
	names := make(map[uint]string)
	lookup := func(id uint) (string, error) {
		if name, ok := names[id]; ok {
			return name, nil
		}
		t, err := s.trainerRepo.GetTrainerByID(id)
		if err != nil {
			return "", err
		}
		name := ""
		if t != nil {
			name = t.Name
		}
		names[id] = name
		return name, nil
	}

	responses := make([]BattleResponse, 0, len(battles))
	for _, b := range battles {
		resp := s.toResponse(b)
		var err error
		if resp.Team1TrainerName, err = lookup(b.Team1TrainerID); err != nil {
			return nil, err
		}
		if resp.Team2TrainerName, err = lookup(b.Team2TrainerID); err != nil {
			return nil, err
		}
		if resp.WinnerTrainerName, err = lookup(b.WinnerTrainerID); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *BattleService) toResponse(b Battle) BattleResponse {
	return BattleResponse{
		ID:              b.ID,
		Team1TrainerID:  b.Team1TrainerID,
		Team2TrainerID:  b.Team2TrainerID,
		WinnerTrainerID: b.WinnerTrainerID,
		Team1Strength:   b.Team1Strength,
		Team2Strength:   b.Team2Strength,
		VictoryMargin:   b.VictoryMargin,
		BattleDate:      b.BattleDate,
		BattleDetails:   b.BattleDetails,
	}
}
