package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"unicode/utf8"

	"go_5_wheelword/internal/middleware"
	"go_5_wheelword/internal/model"
	"go_5_wheelword/internal/puzzle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmitGuess は回答を検証・判定します。
// 認証済みプレイヤーは (player, game) の行ロックの中で追記と成績更新を1トランザクションで行い、
// 匿名プレイヤーは session をこれまでの回答として扱い何も保存しない
func (s *gameService) SubmitGuess(ctx context.Context, rawGuess string, playerID *uuid.UUID, session model.SessionAttempts) (*model.GuessResult, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("player", model.PlayerRef(playerID)))

	guess := puzzle.Normalize(rawGuess)
	if !s.alphabet.Contains(guess) {
		return nil, gameError(model.ErrInvalidCharacters)
	}

	game, err := s.todayGame(ctx)
	if err != nil {
		return nil, err
	}
	secret := game.Word.Text

	if utf8.RuneCountInString(guess) != utf8.RuneCountInString(secret) {
		return nil, gameError(model.ErrLengthMismatch)
	}

	var result *model.GuessResult
	if playerID == nil {
		result, err = s.submitAnonymous(guess, secret, session)
	} else {
		result, err = s.submitPersisted(ctx, *playerID, game, guess)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Guess processed",
		slog.Int("game_number", game.GameNumber),
		slog.Int("attempts_used", result.AttemptsUsed),
		slog.Bool("game_over", result.GameOver),
		slog.Bool("won", result.Won),
	)
	return result, nil
}

// submitAnonymous は正規化した session を永続化済みの記録と同じ規則で扱います
func (s *gameService) submitAnonymous(guess, secret string, session model.SessionAttempts) (*model.GuessResult, error) {
	prior := puzzle.NormalizeAll(session)
	if len(prior) > s.limit {
		return nil, gameError(model.ErrAttemptsExhausted)
	}
	if slices.Contains(prior, secret) || len(prior) == s.limit {
		return s.terminalResult(prior, secret, nil), nil
	}
	return s.applyGuess(prior, guess, secret)
}

func (s *gameService) submitPersisted(ctx context.Context, playerID uuid.UUID, game *model.DailyGame, guess string) (*model.GuessResult, error) {
	secret := game.Word.Text
	gameDate := game.GameDate
	var result *model.GuessResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 初回の回答でもロック対象の行があるようにする
		placeholder := &model.AttemptRecord{
			AttemptID: uuid.New(),
			PlayerID:  playerID,
			GameID:    game.GameID,
			Guesses:   model.StringList{},
		}
		if err := s.attemptRepo.EnsurePlaceholder(ctx, tx, placeholder); err != nil {
			return err
		}
		record, err := s.attemptRepo.FindForUpdate(ctx, tx, playerID, game.GameID)
		if err != nil {
			return err
		}

		prior := []string(record.Guesses)
		if record.IsTerminal(s.limit) {
			stats, err := s.stats.CurrentStats(ctx, tx, playerID)
			if err != nil {
				return err
			}
			result = s.terminalResult(prior, secret, stats)
			return nil
		}

		next, err := s.applyGuess(prior, guess, secret)
		if err != nil {
			return err
		}

		record.Guesses = next.Attempts
		record.AttemptCount = len(next.Attempts)
		record.Won = next.Won
		if next.GameOver {
			completedAt := s.now().UTC()
			record.CompletedAt = &completedAt
		}
		if err := s.attemptRepo.Save(ctx, tx, record); err != nil {
			return err
		}

		if next.GameOver {
			stats, err := s.stats.RecordCompletion(ctx, tx, playerID, next.Won, next.AttemptsUsed, gameDate)
			if err != nil {
				return err
			}
			next.Stats = toStatsResponse(stats, s.limit)
		}
		result = next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gameService.submitPersisted: %w", err)
	}
	return result, nil
}

// applyGuess は重複と回数上限を確認してから判定し、新しい回答リストを作ります
func (s *gameService) applyGuess(prior []string, guess, secret string) (*model.GuessResult, error) {
	if slices.Contains(prior, guess) {
		return nil, gameError(model.ErrDuplicateGuess)
	}
	if len(prior) >= s.limit {
		return nil, gameError(model.ErrAttemptsExhausted)
	}

	feedback := puzzle.Evaluate(guess, secret)
	correct := puzzle.IsCorrect(guess, secret)
	attempts := append(slices.Clone(prior), guess)
	gameOver := correct || len(attempts) == s.limit

	result := &model.GuessResult{
		Guess:        guess,
		Feedback:     puzzle.Strings(feedback),
		IsCorrect:    correct,
		AttemptsUsed: len(attempts),
		GameOver:     gameOver,
		Won:          correct,
		Attempts:     attempts,
	}
	if gameOver {
		result.CorrectWord = secret
	}
	return result, nil
}

// terminalResult は終了済みのゲームに対し、最後の回答を元にした同じ結果を返します
func (s *gameService) terminalResult(prior []string, secret string, stats *model.StatsResponse) *model.GuessResult {
	result := &model.GuessResult{
		AttemptsUsed: len(prior),
		GameOver:     true,
		Won:          slices.Contains(prior, secret),
		Attempts:     slices.Clone(prior),
		CorrectWord:  secret,
		Stats:        stats,
	}
	if n := len(prior); n > 0 {
		last := prior[n-1]
		result.Guess = last
		result.IsCorrect = puzzle.IsCorrect(last, secret)
		if utf8.RuneCountInString(last) == utf8.RuneCountInString(secret) {
			result.Feedback = puzzle.Strings(puzzle.Evaluate(last, secret))
		}
	}
	if result.Feedback == nil {
		result.Feedback = []string{}
	}
	return result
}
