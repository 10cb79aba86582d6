//go:generate mockery --name StatsRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_wheelword/internal/middleware"
	"go_5_wheelword/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsRepository はプレイヤー成績を扱います
type StatsRepository interface {
	Find(ctx context.Context, db *gorm.DB, playerID uuid.UUID) (*model.PlayerStats, error)
	Upsert(ctx context.Context, tx *gorm.DB, stats *model.PlayerStats) error
}

type gormStatsRepository struct{}

func NewGormStatsRepository() StatsRepository {
	return &gormStatsRepository{}
}

func (r *gormStatsRepository) Find(ctx context.Context, db *gorm.DB, playerID uuid.UUID) (*model.PlayerStats, error) {
	logger := middleware.GetLogger(ctx)
	var stats model.PlayerStats
	result := db.WithContext(ctx).Where("player_id = ?", playerID).First(&stats)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding player stats in DB",
			"error", result.Error,
			"player_id", playerID.String(),
		)
		return nil, fmt.Errorf("gormStatsRepository.Find: %w", result.Error)
	}
	return &stats, nil
}

// Upsert は player_id をキーに挿入または全カラム更新します
func (r *gormStatsRepository) Upsert(ctx context.Context, tx *gorm.DB, stats *model.PlayerStats) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"games_played", "games_won", "current_streak", "max_streak", "last_played_date", "win_distribution", "updated_at"}),
		}).
		Create(stats)
	if result.Error != nil {
		logger.Error("Error upserting player stats in DB",
			"error", result.Error,
			"player_id", stats.PlayerID.String(),
		)
		return fmt.Errorf("gormStatsRepository.Upsert: %w", result.Error)
	}
	return nil
}
