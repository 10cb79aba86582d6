//go:generate mockery --name GameService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"go_5_wheelword/internal/config"
	"go_5_wheelword/internal/model"
	"go_5_wheelword/internal/puzzle"
	"go_5_wheelword/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameService はハンドラから使うデイリーパズルの操作をまとめます
type GameService interface {
	Today(ctx context.Context) (*model.TodayResponse, error)
	SubmitGuess(ctx context.Context, rawGuess string, playerID *uuid.UUID, session model.SessionAttempts) (*model.GuessResult, error)
	// GetState は gameDate が空なら今日の状態を返します
	GetState(ctx context.Context, playerID uuid.UUID, gameDate string) (*model.GameStateResponse, error)
	GetStats(ctx context.Context, playerID uuid.UUID) (*model.StatsResponse, error)
	Share(ctx context.Context, req *model.ShareRequest) (*model.ShareResponse, error)
}

type gameService struct {
	db          *gorm.DB
	ledger      DailyGameService
	attemptRepo repository.AttemptRepository
	stats       StatsService
	alphabet    *puzzle.Alphabet
	formatter   puzzle.ShareFormatter
	limit       int
	now         Clock
}

func NewGameService(db *gorm.DB, ledger DailyGameService, attemptRepo repository.AttemptRepository, stats StatsService, cfg *config.Config, clock Clock) GameService {
	if clock == nil {
		clock = time.Now
	}
	return &gameService{
		db:          db,
		ledger:      ledger,
		attemptRepo: attemptRepo,
		stats:       stats,
		alphabet:    puzzle.NewAlphabet(cfg.Game.Alphabet),
		formatter: puzzle.ShareFormatter{
			Title:        cfg.Game.ShareTitle,
			FooterURL:    cfg.Game.ShareFooterURL,
			AttemptLimit: cfg.Game.AttemptLimit,
		},
		limit: cfg.Game.AttemptLimit,
		now:   clock,
	}
}

func (s *gameService) today() string {
	return model.DateKey(s.now())
}

// todayGame は今日のゲームを取得し、お題の単語が読み込まれていることを保証します
func (s *gameService) todayGame(ctx context.Context) (*model.DailyGame, error) {
	game, err := s.ledger.GetOrCreateGame(ctx, s.today())
	if err != nil {
		return nil, gameError(err)
	}
	if game.Word == nil {
		return nil, fmt.Errorf("gameService.todayGame: game %d has no word loaded: %w", game.GameNumber, model.ErrInternalServer)
	}
	return game, nil
}

func (s *gameService) Today(ctx context.Context) (*model.TodayResponse, error) {
	game, err := s.todayGame(ctx)
	if err != nil {
		return nil, err
	}
	return &model.TodayResponse{
		GameNumber: game.GameNumber,
		WordLength: utf8.RuneCountInString(game.Word.Text),
		GameDate:   game.GameDate,
	}, nil
}

func (s *gameService) GetState(ctx context.Context, playerID uuid.UUID, gameDate string) (*model.GameStateResponse, error) {
	today := s.today()
	if gameDate == "" {
		gameDate = today
	}
	if _, err := model.ParseDateKey(gameDate); err != nil {
		return nil, invalidInput("INVALID_DATE", "日付はYYYY-MM-DD形式で指定してください。", "date")
	}
	// 同じ書式の日付キーは文字列比較で前後が決まる
	if gameDate > today {
		return nil, invalidInput("INVALID_DATE", "未来の日付は指定できません。", "date")
	}

	var game *model.DailyGame
	var err error
	if gameDate == today {
		game, err = s.todayGame(ctx)
	} else {
		game, err = s.ledger.FindGameByDate(ctx, gameDate)
		if err != nil {
			err = gameError(err)
		}
	}
	if err != nil {
		return nil, err
	}
	if game.Word == nil {
		return nil, fmt.Errorf("gameService.GetState: game %d has no word loaded: %w", game.GameNumber, model.ErrInternalServer)
	}

	var attempts []string
	var won, gameOver bool
	record, err := s.attemptRepo.Find(ctx, s.db, playerID, game.GameID)
	switch {
	case err == nil:
		attempts = record.Guesses
		won = record.Won
		gameOver = record.IsTerminal(s.limit)
	case errors.Is(err, model.ErrNotFound):
		attempts = []string{}
	default:
		return nil, fmt.Errorf("gameService.GetState: %w", err)
	}

	secret := game.Word.Text
	feedbacks := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		feedbacks = append(feedbacks, puzzle.Strings(puzzle.Evaluate(a, secret)))
	}

	resp := &model.GameStateResponse{
		GameNumber: game.GameNumber,
		WordLength: utf8.RuneCountInString(secret),
		GameDate:   game.GameDate,
		Attempts:   attempts,
		Feedbacks:  feedbacks,
		GameOver:   gameOver,
		Won:        won,
	}
	// 終了済み、または既に回答できない過去の日は答えを返す
	if gameOver || gameDate < today {
		resp.CorrectWord = secret
	}
	return resp, nil
}

func (s *gameService) GetStats(ctx context.Context, playerID uuid.UUID) (*model.StatsResponse, error) {
	return s.stats.GetStats(ctx, playerID)
}

func (s *gameService) Share(ctx context.Context, req *model.ShareRequest) (*model.ShareResponse, error) {
	if len(req.Attempts) != len(req.Feedbacks) {
		return nil, invalidInput("INVALID_SHARE", "回答一覧と判定一覧の件数が一致しません。", "feedbacks")
	}
	rows := make([][]puzzle.Feedback, 0, len(req.Feedbacks))
	for _, row := range req.Feedbacks {
		parsed := make([]puzzle.Feedback, 0, len(row))
		for _, f := range row {
			fb, ok := puzzle.ParseFeedback(f)
			if !ok {
				return nil, invalidInput("INVALID_SHARE", "判定一覧に不正な値が含まれています。", "feedbacks")
			}
			parsed = append(parsed, fb)
		}
		rows = append(rows, parsed)
	}

	won := req.Won != nil && *req.Won
	text, err := s.formatter.Format(req.GameNumber, rows, won)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return nil, invalidInput("INVALID_SHARE", "シェアできる形式ではありません。", "feedbacks")
		}
		return nil, gameError(err)
	}
	return &model.ShareResponse{Text: text}, nil
}
