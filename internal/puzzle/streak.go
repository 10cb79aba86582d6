package puzzle

import (
	"fmt"
	"math"
	"time"

	"go_5_wheelword/internal/model"
)

// ApplyCompletion は終了したゲーム1回分を成績に反映します。
// 1つの AttemptRecord につき1回だけ呼ぶこと
func ApplyCompletion(stats *model.PlayerStats, won bool, attemptsUsed int, completionDate string, attemptLimit int) error {
	completion, err := model.ParseDateKey(completionDate)
	if err != nil {
		return fmt.Errorf("invalid completion date %q: %w", completionDate, err)
	}

	if won {
		stats.CurrentStreak = nextWinStreak(stats, completion)
	} else {
		stats.CurrentStreak = 0
	}
	if stats.CurrentStreak > stats.MaxStreak {
		stats.MaxStreak = stats.CurrentStreak
	}

	stats.GamesPlayed++
	if won {
		stats.GamesWon++
		for len(stats.WinDistribution) < attemptLimit {
			stats.WinDistribution = append(stats.WinDistribution, 0)
		}
		if attemptsUsed >= 1 && attemptsUsed <= len(stats.WinDistribution) {
			stats.WinDistribution[attemptsUsed-1]++
		}
	}

	date := completionDate
	stats.LastPlayedDate = &date
	return nil
}

// nextWinStreak は勝利時の新しい連勝数を返します。同日か翌日なら継続、2日以上空いたら1から
func nextWinStreak(stats *model.PlayerStats, completion time.Time) int {
	if stats.LastPlayedDate == nil {
		return 1
	}
	last, err := model.ParseDateKey(*stats.LastPlayedDate)
	if err != nil {
		return 1
	}
	if DaysBetween(last, completion) <= 1 {
		return stats.CurrentStreak + 1
	}
	return 1
}

// DaysBetween は from から to までの暦日の差を返します (UTC)
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// WinPercentage は勝率を四捨五入した整数で返します。未プレイなら0
func WinPercentage(played, won int) int {
	if played == 0 {
		return 0
	}
	return int(math.Round(float64(won) / float64(played) * 100))
}
