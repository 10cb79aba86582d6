package model

import (
	"time"

	"github.com/google/uuid"
)

// PlayerStats はアカウント単位の累計成績
type PlayerStats struct {
	PlayerID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	GamesPlayed     int       `gorm:"not null;default:0" json:"games_played"`
	GamesWon        int       `gorm:"not null;default:0" json:"games_won"`
	CurrentStreak   int       `gorm:"not null;default:0" json:"current_streak"`
	MaxStreak       int       `gorm:"not null;default:0" json:"max_streak"`
	LastPlayedDate  *string   `gorm:"type:varchar(10)" json:"last_played_date"`
	WinDistribution IntList   `gorm:"type:text;not null" json:"win_distribution"` // index = 勝利までの回数-1
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func (PlayerStats) TableName() string {
	return "player_stats"
}

// NewPlayerStats は空の成績を作成します
func NewPlayerStats(playerID uuid.UUID, attemptLimit int) *PlayerStats {
	return &PlayerStats{
		PlayerID:        playerID,
		WinDistribution: make(IntList, attemptLimit),
	}
}

// StatsResponse は成績APIのレスポンスDTO
type StatsResponse struct {
	GamesPlayed     int     `json:"games_played"`
	GamesWon        int     `json:"games_won"`
	WinPercentage   int     `json:"win_percentage"`
	CurrentStreak   int     `json:"current_streak"`
	MaxStreak       int     `json:"max_streak"`
	LastPlayedDate  *string `json:"last_played_date"`
	WinDistribution []int   `json:"win_distribution"`
}
