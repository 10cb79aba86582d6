package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"go_5_wheelword/internal/config"
	"go_5_wheelword/internal/middleware"
	"go_5_wheelword/internal/model"
	"go_5_wheelword/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordPicker は [0, n) の添字を返します。テストでは固定値を返す関数に差し替える
type WordPicker func(n int) int

// WordSelector はその日のお題を1つ選び、利用状況を更新します
type WordSelector interface {
	SelectWordForDate(ctx context.Context, tx *gorm.DB, gameDate string, usedAt time.Time) (*model.WordEntry, error)
}

type wordSelector struct {
	wordRepo repository.WordRepository
	gameRepo repository.DailyGameRepository
	game     config.GameConfig
	pick     WordPicker
}

// NewWordSelector は WordSelector を生成します。pick が nil なら math/rand を使う
func NewWordSelector(wordRepo repository.WordRepository, gameRepo repository.DailyGameRepository, cfg *config.Config, pick WordPicker) WordSelector {
	if pick == nil {
		pick = rand.IntN
	}
	return &wordSelector{
		wordRepo: wordRepo,
		gameRepo: gameRepo,
		game:     cfg.Game,
		pick:     pick,
	}
}

// SelectWordForDate は tx の中で呼ばれ、利用回数の更新も同じ tx で行います
func (s *wordSelector) SelectWordForDate(ctx context.Context, tx *gorm.DB, gameDate string, usedAt time.Time) (*model.WordEntry, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("game_date", gameDate))

	pool, err := s.wordRepo.FindCandidates(ctx, tx, s.game.MinWordLength, s.game.MaxWordLength, s.game.CandidatePoolSize, nil)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		logger.Error("No eligible words in corpus",
			slog.Int("min_length", s.game.MinWordLength),
			slog.Int("max_length", s.game.MaxWordLength),
		)
		return nil, model.ErrNoEligibleWords
	}

	cooldownIDs, err := s.gameRepo.RecentWordIDs(ctx, tx, s.game.CooldownGames)
	if err != nil {
		return nil, err
	}

	eligible := excludeCooldown(pool, cooldownIDs)
	if len(eligible) == 0 {
		// 候補窓がすべてクールダウン中なら、除外した上で窓を取り直す
		eligible, err = s.wordRepo.FindCandidates(ctx, tx, s.game.MinWordLength, s.game.MaxWordLength, s.game.CandidatePoolSize, cooldownIDs)
		if err != nil {
			return nil, err
		}
		if len(eligible) == 0 {
			logger.Warn("Every eligible word is in cooldown, reusing a recent word",
				slog.Int("cooldown_games", s.game.CooldownGames),
				slog.Int("pool_size", len(pool)),
			)
			eligible = pool
		}
	}

	chosen := s.tieBreak(eligible)
	if err := s.wordRepo.IncrementUsage(ctx, tx, chosen.WordID, usedAt); err != nil {
		return nil, err
	}
	chosen.TimesUsed++
	chosen.LastUsedAt = &usedAt

	logger.Info("Word selected for daily game",
		slog.String("word_id", chosen.WordID.String()),
		slog.Int("times_used", chosen.TimesUsed),
		slog.Int("candidates", len(eligible)),
	)
	return chosen, nil
}

// tieBreak は利用回数が最小の単語だけに絞り、その中から1つを選びます
func (s *wordSelector) tieBreak(words []*model.WordEntry) *model.WordEntry {
	minUsed := words[0].TimesUsed
	for _, w := range words[1:] {
		minUsed = min(minUsed, w.TimesUsed)
	}
	ties := make([]*model.WordEntry, 0, len(words))
	for _, w := range words {
		if w.TimesUsed == minUsed {
			ties = append(ties, w)
		}
	}
	return ties[s.pick(len(ties))]
}

func excludeCooldown(pool []*model.WordEntry, cooldownIDs []uuid.UUID) []*model.WordEntry {
	if len(cooldownIDs) == 0 {
		return pool
	}
	cooled := make(map[uuid.UUID]struct{}, len(cooldownIDs))
	for _, id := range cooldownIDs {
		cooled[id] = struct{}{}
	}
	eligible := make([]*model.WordEntry, 0, len(pool))
	for _, w := range pool {
		if _, ok := cooled[w.WordID]; !ok {
			eligible = append(eligible, w)
		}
	}
	return eligible
}
