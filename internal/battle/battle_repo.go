package battle

import (
	"errors"

	"gorm.io/gorm"
)

// LeaderboardRow is the raw per-trainer aggregate the leaderboard query
// produces: battles won and battles participated in.
type LeaderboardRow struct {
	TrainerID    uint   `json:"trainer_id"`
	TrainerName  string `json:"trainer_name"`
	Wins         int64  `json:"wins"`
	TotalBattles int64  `json:"total_battles"`
}

// BattleRepository defines the interface for battle data operations.
type BattleRepository interface {
	CreateBattle(battle *Battle) error
	GetBattleByID(id uint) (*Battle, error)
	GetAllBattles(skip, limit int) ([]Battle, int64, error)
	GetBattlesByTrainer(trainerID uint) ([]Battle, error)
	GetTrainerWins(trainerID uint) (int64, error)
	GetTrainerLosses(trainerID uint) (int64, error)
	CountBattles() (int64, error)
	GetLeaderboardRows() ([]LeaderboardRow, error)
	DeleteBattle(id uint) error
}

type battleRepository struct {
	db *gorm.DB
}

// NewBattleRepository creates a new instance of BattleRepository.
func NewBattleRepository(db *gorm.DB) BattleRepository {
	return &battleRepository{db: db}
}

func (r *battleRepository) CreateBattle(battle *Battle) error {
	return r.db.Create(battle).Error
}

func (r *battleRepository) GetBattleByID(id uint) (*Battle, error) {
	var b Battle
	if err := r.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *battleRepository) GetAllBattles(skip, limit int) ([]Battle, int64, error) {
	var battles []Battle
	var total int64

	query := r.db.Model(&Battle{})
	query.Count(&total)

	if err := query.Offset(skip).Limit(limit).Order("battle_date desc").Find(&battles).Error; err != nil {
		return nil, 0, err
	}
	return battles, total, nil
}

func (r *battleRepository) GetBattlesByTrainer(trainerID uint) ([]Battle, error) {
	var battles []Battle
	err := r.db.Where("team1_trainer_id = ? OR team2_trainer_id = ?", trainerID, trainerID).
		Order("battle_date desc").
		Find(&battles).Error
	if err != nil {
		return nil, err
	}
	return battles, nil
}

func (r *battleRepository) GetTrainerWins(trainerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&Battle{}).
		Where("winner_trainer_id = ?", trainerID).
		Count(&count).Error
	return count, err
}

func (r *battleRepository) GetTrainerLosses(trainerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&Battle{}).
		Where("(team1_trainer_id = ? OR team2_trainer_id = ?) AND winner_trainer_id <> ?",
			trainerID, trainerID, trainerID).
		Count(&count).Error
	return count, err
}

func (r *battleRepository) CountBattles() (int64, error) {
	var count int64
	err := r.db.Model(&Battle{}).Count(&count).Error
	return count, err
}

// GetLeaderboardRows aggregates the battle history per trainer. Both
// participant columns go through a UNION ALL so a trainer's appearances are
// counted once per battle regardless of which side they were on.
func (r *battleRepository) GetLeaderboardRows() ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.db.Raw(`
		SELECT t.id   AS trainer_id,
		       t.name AS trainer_name,
		       COALESCE(w.wins, 0) AS wins,
		       p.total_battles     AS total_battles
		FROM trainers t
		JOIN (
			SELECT trainer_id, COUNT(*) AS total_battles
			FROM (
				SELECT team1_trainer_id AS trainer_id FROM battles WHERE deleted_at IS NULL
				UNION ALL
				SELECT team2_trainer_id AS trainer_id FROM battles WHERE deleted_at IS NULL
			) participants
			GROUP BY trainer_id
		) p ON p.trainer_id = t.id
		LEFT JOIN (
			SELECT winner_trainer_id AS trainer_id, COUNT(*) AS wins
			FROM battles
			WHERE deleted_at IS NULL
			GROUP BY winner_trainer_id
		) w ON w.trainer_id = t.id
		WHERE t.deleted_at IS NULL
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *battleRepository) DeleteBattle(id uint) error {
	// Battle history has no soft-delete requirement; remove the row outright.
	return r.db.Unscoped().Delete(&Battle{}, id).Error
}
