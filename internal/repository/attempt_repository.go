//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
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

// AttemptRepository は認証済みプレイヤーの回答履歴を扱います
type AttemptRepository interface {
	EnsurePlaceholder(ctx context.Context, tx *gorm.DB, record *model.AttemptRecord) error
	FindForUpdate(ctx context.Context, tx *gorm.DB, playerID, gameID uuid.UUID) (*model.AttemptRecord, error)
	Find(ctx context.Context, db *gorm.DB, playerID, gameID uuid.UUID) (*model.AttemptRecord, error)
	Save(ctx context.Context, tx *gorm.DB, record *model.AttemptRecord) error
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

// EnsurePlaceholder は (player_id, game_id) の行が無ければ空の行を作ります。既にあれば何もしない
func (r *gormAttemptRepository) EnsurePlaceholder(ctx context.Context, tx *gorm.DB, record *model.AttemptRecord) error {
	logger := middleware.GetLogger(ctx)
	if record.Guesses == nil {
		record.Guesses = model.StringList{}
	}
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}, {Name: "game_id"}},
			DoNothing: true,
		}).
		Create(record)
	if result.Error != nil {
		logger.Error("Error ensuring attempt record in DB",
			"error", result.Error,
			"player_id", record.PlayerID.String(),
			"game_id", record.GameID.String(),
		)
		return fmt.Errorf("gormAttemptRepository.EnsurePlaceholder: %w", result.Error)
	}
	return nil
}

// FindForUpdate は行ロック (SELECT ... FOR UPDATE) を取得して読み込みます
func (r *gormAttemptRepository) FindForUpdate(ctx context.Context, tx *gorm.DB, playerID, gameID uuid.UUID) (*model.AttemptRecord, error) {
	return r.find(ctx, tx.Clauses(clause.Locking{Strength: "UPDATE"}), playerID, gameID, "FindForUpdate")
}

func (r *gormAttemptRepository) Find(ctx context.Context, db *gorm.DB, playerID, gameID uuid.UUID) (*model.AttemptRecord, error) {
	return r.find(ctx, db, playerID, gameID, "Find")
}

func (r *gormAttemptRepository) find(ctx context.Context, db *gorm.DB, playerID, gameID uuid.UUID, op string) (*model.AttemptRecord, error) {
	logger := middleware.GetLogger(ctx)
	var record model.AttemptRecord
	result := db.WithContext(ctx).
		Where("player_id = ? AND game_id = ?", playerID, gameID).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding attempt record in DB",
			"error", result.Error,
			"player_id", playerID.String(),
			"game_id", gameID.String(),
		)
		return nil, fmt.Errorf("gormAttemptRepository.%s: %w", op, result.Error)
	}
	return &record, nil
}

func (r *gormAttemptRepository) Save(ctx context.Context, tx *gorm.DB, record *model.AttemptRecord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(record)
	if result.Error != nil {
		logger.Error("Error saving attempt record in DB",
			"error", result.Error,
			"attempt_id", record.AttemptID.String(),
		)
		return fmt.Errorf("gormAttemptRepository.Save: %w", result.Error)
	}
	return nil
}
