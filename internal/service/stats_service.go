package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go_5_wheelword/internal/config"
	"go_5_wheelword/internal/middleware"
	"go_5_wheelword/internal/model"
	"go_5_wheelword/internal/puzzle"
	"go_5_wheelword/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatsService は認証済みプレイヤーの成績を管理します
type StatsService interface {
	// RecordCompletion は終了状態への遷移ごとに1回だけ呼ばれ、tx の中で成績を更新します
	RecordCompletion(ctx context.Context, tx *gorm.DB, playerID uuid.UUID, won bool, attemptsUsed int, completionDate string) (*model.PlayerStats, error)
	GetStats(ctx context.Context, playerID uuid.UUID) (*model.StatsResponse, error)
	// CurrentStats は更新せずに db から成績を読みます
	CurrentStats(ctx context.Context, db *gorm.DB, playerID uuid.UUID) (*model.StatsResponse, error)
}

type statsService struct {
	db           *gorm.DB
	statsRepo    repository.StatsRepository
	attemptLimit int
}

func NewStatsService(db *gorm.DB, statsRepo repository.StatsRepository, cfg *config.Config) StatsService {
	return &statsService{
		db:           db,
		statsRepo:    statsRepo,
		attemptLimit: cfg.Game.AttemptLimit,
	}
}

func (s *statsService) RecordCompletion(ctx context.Context, tx *gorm.DB, playerID uuid.UUID, won bool, attemptsUsed int, completionDate string) (*model.PlayerStats, error) {
	logger := middleware.GetLogger(ctx)

	stats, err := s.statsRepo.Find(ctx, tx, playerID)
	if errors.Is(err, model.ErrNotFound) {
		stats = model.NewPlayerStats(playerID, s.attemptLimit)
	} else if err != nil {
		return nil, fmt.Errorf("statsService.RecordCompletion: %w", err)
	}

	if err := puzzle.ApplyCompletion(stats, won, attemptsUsed, completionDate, s.attemptLimit); err != nil {
		return nil, fmt.Errorf("statsService.RecordCompletion: %w", err)
	}
	if err := s.statsRepo.Upsert(ctx, tx, stats); err != nil {
		return nil, fmt.Errorf("statsService.RecordCompletion: %w", err)
	}

	logger.Info("Player stats updated",
		slog.String("player_id", playerID.String()),
		slog.Bool("won", won),
		slog.Int("attempts_used", attemptsUsed),
		slog.Int("current_streak", stats.CurrentStreak),
	)
	return stats, nil
}

func (s *statsService) GetStats(ctx context.Context, playerID uuid.UUID) (*model.StatsResponse, error) {
	return s.CurrentStats(ctx, s.db, playerID)
}

func (s *statsService) CurrentStats(ctx context.Context, db *gorm.DB, playerID uuid.UUID) (*model.StatsResponse, error) {
	stats, err := s.statsRepo.Find(ctx, db, playerID)
	if errors.Is(err, model.ErrNotFound) {
		// 未プレイは0埋め
		stats = model.NewPlayerStats(playerID, s.attemptLimit)
	} else if err != nil {
		return nil, fmt.Errorf("statsService.CurrentStats: %w", err)
	}
	return toStatsResponse(stats, s.attemptLimit), nil
}

func toStatsResponse(stats *model.PlayerStats, attemptLimit int) *model.StatsResponse {
	dist := make([]int, max(attemptLimit, len(stats.WinDistribution)))
	copy(dist, stats.WinDistribution)
	return &model.StatsResponse{
		GamesPlayed:     stats.GamesPlayed,
		GamesWon:        stats.GamesWon,
		WinPercentage:   puzzle.WinPercentage(stats.GamesPlayed, stats.GamesWon),
		CurrentStreak:   stats.CurrentStreak,
		MaxStreak:       stats.MaxStreak,
		LastPlayedDate:  stats.LastPlayedDate,
		WinDistribution: dist,
	}
}
