package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go_5_wheelword/internal/middleware"
	"go_5_wheelword/internal/model"
	"go_5_wheelword/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxCreateAttempts は game_number の衝突時に作成をやり直す上限
const maxCreateAttempts = 3

// Clock は現在時刻を返します
type Clock func() time.Time

// DailyGameService は1暦日1ゲームの台帳です
type DailyGameService interface {
	GetOrCreateGame(ctx context.Context, gameDate string) (*model.DailyGame, error)
	FindGameByDate(ctx context.Context, gameDate string) (*model.DailyGame, error)
}

type dailyGameService struct {
	db       *gorm.DB
	gameRepo repository.DailyGameRepository
	selector WordSelector
	now      Clock
}

func NewDailyGameService(db *gorm.DB, gameRepo repository.DailyGameRepository, selector WordSelector, clock Clock) DailyGameService {
	if clock == nil {
		clock = time.Now
	}
	return &dailyGameService{
		db:       db,
		gameRepo: gameRepo,
		selector: selector,
		now:      clock,
	}
}

// GetOrCreateGame は gameDate のゲームを返し、無ければ作成します。
// 同日の同時作成は game_date の一意制約で1件に決まり、負けた側は勝った側の行を返す
func (s *dailyGameService) GetOrCreateGame(ctx context.Context, gameDate string) (*model.DailyGame, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("game_date", gameDate))

	game, err := s.gameRepo.FindByDate(ctx, s.db, gameDate)
	if err == nil {
		return game, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("dailyGameService.GetOrCreateGame: %w", err)
	}

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		game, err = s.createGame(ctx, gameDate)
		if err == nil {
			logger.Info("Daily game created",
				slog.Int("game_number", game.GameNumber),
				slog.String("game_id", game.GameID.String()),
			)
			return game, nil
		}
		if !errors.Is(err, model.ErrConflict) {
			return nil, err
		}

		// 他のリクエストが先に作成していればそれを返す
		existing, findErr := s.gameRepo.FindByDate(ctx, s.db, gameDate)
		if findErr == nil {
			logger.Info("Daily game created concurrently, using existing row",
				slog.Int("game_number", existing.GameNumber),
			)
			return existing, nil
		}
		if !errors.Is(findErr, model.ErrNotFound) {
			return nil, fmt.Errorf("dailyGameService.GetOrCreateGame: %w", findErr)
		}
		// 別の日付と game_number が衝突した
		logger.Warn("Game number conflict, retrying", slog.Int("attempt", attempt))
	}
	return nil, fmt.Errorf("dailyGameService.GetOrCreateGame: gave up after %d attempts: %w", maxCreateAttempts, model.ErrConflict)
}

// createGame は選出、利用回数の更新、台帳への挿入を1つのトランザクションで行います
func (s *dailyGameService) createGame(ctx context.Context, gameDate string) (*model.DailyGame, error) {
	var created *model.DailyGame
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, err := s.selector.SelectWordForDate(ctx, tx, gameDate, s.now().UTC())
		if err != nil {
			return err
		}
		last, err := s.gameRepo.LastGameNumber(ctx, tx)
		if err != nil {
			return err
		}
		game := &model.DailyGame{
			GameID:     uuid.New(),
			GameNumber: last + 1,
			WordID:     word.WordID,
			GameDate:   gameDate,
		}
		if err := s.gameRepo.Create(ctx, tx, game); err != nil {
			return err
		}
		game.Word = word
		created = game
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// FindGameByDate は作成を行わずに検索します
func (s *dailyGameService) FindGameByDate(ctx context.Context, gameDate string) (*model.DailyGame, error) {
	game, err := s.gameRepo.FindByDate(ctx, s.db, gameDate)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrGameNotFound
		}
		return nil, fmt.Errorf("dailyGameService.FindGameByDate: %w", err)
	}
	return game, nil
}
