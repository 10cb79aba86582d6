//go:generate mockery --name DailyGameRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_wheelword/internal/middleware"
	"go_5_wheelword/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyGameRepository は日替わりゲームの台帳を扱います
type DailyGameRepository interface {
	Create(ctx context.Context, tx *gorm.DB, game *model.DailyGame) error
	FindByDate(ctx context.Context, db *gorm.DB, gameDate string) (*model.DailyGame, error)
	LastGameNumber(ctx context.Context, db *gorm.DB) (int, error)
	RecentWordIDs(ctx context.Context, db *gorm.DB, n int) ([]uuid.UUID, error)
}

type gormDailyGameRepository struct{}

func NewGormDailyGameRepository() DailyGameRepository {
	return &gormDailyGameRepository{}
}

// Create は game_date / game_number の一意制約違反を model.ErrConflict で返します
func (r *gormDailyGameRepository) Create(ctx context.Context, tx *gorm.DB, game *model.DailyGame) error {
	logger := middleware.GetLogger(ctx)
	// Word は関連の保存対象にしない
	result := tx.WithContext(ctx).Omit("Word").Create(game)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Info("Daily game already exists",
				"game_date", game.GameDate,
				"game_number", game.GameNumber,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating daily game in DB",
			"error", result.Error,
			"game_date", game.GameDate,
		)
		return fmt.Errorf("gormDailyGameRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDailyGameRepository) FindByDate(ctx context.Context, db *gorm.DB, gameDate string) (*model.DailyGame, error) {
	logger := middleware.GetLogger(ctx)
	var game model.DailyGame
	result := db.WithContext(ctx).Preload("Word").Where("game_date = ?", gameDate).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding daily game by date in DB",
			"error", result.Error,
			"game_date", gameDate,
		)
		return nil, fmt.Errorf("gormDailyGameRepository.FindByDate: %w", result.Error)
	}
	return &game, nil
}

// LastGameNumber は最大の game_number を返します。ゲームが無ければ 0
func (r *gormDailyGameRepository) LastGameNumber(ctx context.Context, db *gorm.DB) (int, error) {
	logger := middleware.GetLogger(ctx)
	var last int
	result := db.WithContext(ctx).
		Model(&model.DailyGame{}).
		Select("COALESCE(MAX(game_number), 0)").
		Scan(&last)
	if result.Error != nil {
		logger.Error("Error reading last game number in DB", "error", result.Error)
		return 0, fmt.Errorf("gormDailyGameRepository.LastGameNumber: %w", result.Error)
	}
	return last, nil
}

// RecentWordIDs は game_number の新しい順に n 件のゲームの word_id を返します
func (r *gormDailyGameRepository) RecentWordIDs(ctx context.Context, db *gorm.DB, n int) ([]uuid.UUID, error) {
	logger := middleware.GetLogger(ctx)
	ids := make([]uuid.UUID, 0, n)
	if n <= 0 {
		return ids, nil
	}
	result := db.WithContext(ctx).
		Model(&model.DailyGame{}).
		Order("game_number DESC").
		Limit(n).
		Pluck("word_id", &ids)
	if result.Error != nil {
		logger.Error("Error reading recent word ids in DB",
			"error", result.Error,
			"limit", n,
		)
		return nil, fmt.Errorf("gormDailyGameRepository.RecentWordIDs: %w", result.Error)
	}
	return ids, nil
}
