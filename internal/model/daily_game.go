package model

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout は暦日キー (UTC) の書式
const DateLayout = "2006-01-02"

// DailyGame は1暦日につき1つだけ存在するパズル
type DailyGame struct {
	GameID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"game_id"`
	GameNumber int       `gorm:"not null;uniqueIndex" json:"game_number"`
	WordID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	GameDate   string    `gorm:"type:varchar(10);not null;uniqueIndex" json:"game_date"`
	CreatedAt  time.Time `json:"created_at"`

	// 関連 (Preload用)
	Word *WordEntry `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (DailyGame) TableName() string {
	return "daily_games"
}

// DateKey は時刻をUTCの暦日キーに変換します
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDateKey は暦日キーをUTCの0時として解釈します
func ParseDateKey(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
