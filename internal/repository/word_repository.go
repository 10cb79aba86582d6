//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_wheelword/internal/middleware"
	"go_5_wheelword/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordRepository はお題コーパスへのアクセスを提供します
type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.WordEntry) error
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.WordEntry, error)
	FindCandidates(ctx context.Context, db *gorm.DB, minLen, maxLen, limit int, excludeIDs []uuid.UUID) ([]*model.WordEntry, error)
	IncrementUsage(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, usedAt time.Time) error
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.WordEntry) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"text", word.Text,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.WordEntry, error) {
	logger := middleware.GetLogger(ctx)
	var word model.WordEntry
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

// FindCandidates は利用回数の少ない順、最終利用日の古い順 (未使用が先頭) に limit 件を返します。
// excludeIDs に含まれる単語はSQL側で除外する
func (r *gormWordRepository) FindCandidates(ctx context.Context, db *gorm.DB, minLen, maxLen, limit int, excludeIDs []uuid.UUID) ([]*model.WordEntry, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.WordEntry

	query := db.WithContext(ctx).
		Where("length BETWEEN ? AND ?", minLen, maxLen)
	if len(excludeIDs) > 0 {
		query = query.Where("word_id NOT IN ?", excludeIDs)
	}
	result := query.
		Order("times_used ASC").
		Order("last_used_at ASC NULLS FIRST").
		Order("text ASC").
		Limit(limit).
		Find(&words)
	if result.Error != nil {
		logger.Error("Error finding candidate words in DB",
			"error", result.Error,
			"min_length", minLen,
			"max_length", maxLen,
			"excluded", len(excludeIDs),
		)
		return nil, fmt.Errorf("gormWordRepository.FindCandidates: %w", result.Error)
	}
	return words, nil
}

// IncrementUsage は times_used を1増やし last_used_at を更新します
func (r *gormWordRepository) IncrementUsage(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, usedAt time.Time) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.WordEntry{}).
		Where("word_id = ?", wordID).
		UpdateColumns(map[string]interface{}{
			"times_used":   gorm.Expr("times_used + ?", 1),
			"last_used_at": usedAt,
			"updated_at":   usedAt,
		})
	if result.Error != nil {
		logger.Error("Error incrementing word usage in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.IncrementUsage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
