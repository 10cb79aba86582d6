package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"go_5_wheelword/internal/config"
	"go_5_wheelword/internal/model"
	"go_5_wheelword/internal/repository"
	"go_5_wheelword/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// テストごとに別のDBにする。接続1本なのでトランザクション内では tx だけを使うこと
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), repository.NewGormConfig(testLogger))
	require.NoError(t, err, "failed to connect database for service testing")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(&model.WordEntry{}, &model.DailyGame{}, &model.AttemptRecord{}, &model.PlayerStats{})
	require.NoError(t, err, "failed to migrate database for service testing")
	return db
}

// fakeClock はテストから進められる時計
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(date string) *fakeClock {
	d, err := model.ParseDateKey(date)
	if err != nil {
		panic(err)
	}
	return &fakeClock{t: d.Add(12 * time.Hour)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) AddDays(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.AddDate(0, 0, n)
}

// firstPicker は同点の中で常に先頭を選ぶ
func firstPicker(int) int { return 0 }

// fixture は実リポジトリと sqlite で組み立てたサービス一式
type fixture struct {
	db       *gorm.DB
	cfg      *config.Config
	clock    *fakeClock
	wordRepo repository.WordRepository
	gameRepo repository.DailyGameRepository
	selector service.WordSelector
	ledger   service.DailyGameService
	stats    service.StatsService
	game     service.GameService
}

func newFixture(t *testing.T, date string) *fixture {
	t.Helper()
	db := setupTestDB(t)
	cfg := config.Default()
	clock := newFakeClock(date)

	wordRepo := repository.NewGormWordRepository()
	gameRepo := repository.NewGormDailyGameRepository()
	attemptRepo := repository.NewGormAttemptRepository()
	statsRepo := repository.NewGormStatsRepository()

	selector := service.NewWordSelector(wordRepo, gameRepo, cfg, firstPicker)
	ledger := service.NewDailyGameService(db, gameRepo, selector, clock.Now)
	stats := service.NewStatsService(db, statsRepo, cfg)
	game := service.NewGameService(db, ledger, attemptRepo, stats, cfg, clock.Now)

	return &fixture{
		db:       db,
		cfg:      cfg,
		clock:    clock,
		wordRepo: wordRepo,
		gameRepo: gameRepo,
		selector: selector,
		ledger:   ledger,
		stats:    stats,
		game:     game,
	}
}

func (f *fixture) seedWords(t *testing.T, texts ...string) []*model.WordEntry {
	t.Helper()
	words := make([]*model.WordEntry, 0, len(texts))
	for _, text := range texts {
		w := &model.WordEntry{WordID: uuid.New(), Text: text}
		require.NoError(t, f.wordRepo.Create(context.Background(), f.db, w))
		words = append(words, w)
	}
	return words
}

// seedGame は指定日のゲームを直接作ります (選出ロジックを通さない)
func (f *fixture) seedGame(t *testing.T, number int, date string, word *model.WordEntry) *model.DailyGame {
	t.Helper()
	g := &model.DailyGame{GameID: uuid.New(), GameNumber: number, WordID: word.WordID, GameDate: date}
	require.NoError(t, f.gameRepo.Create(context.Background(), f.db, g))
	return g
}

func (f *fixture) reloadWord(t *testing.T, id uuid.UUID) *model.WordEntry {
	t.Helper()
	w, err := f.wordRepo.FindByID(context.Background(), f.db, id)
	require.NoError(t, err)
	return w
}

// stubSelector は常に同じ単語を返す WordSelector
type stubSelector struct {
	word  *model.WordEntry
	err   error
	calls int
}

func (s *stubSelector) SelectWordForDate(ctx context.Context, tx *gorm.DB, gameDate string, usedAt time.Time) (*model.WordEntry, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.word, nil
}
