package model

import (
	"time"

	"github.com/google/uuid"
)

// AttemptRecord は認証済みプレイヤーの1日分の回答履歴
type AttemptRecord struct {
	AttemptID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PlayerID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_attempt_player_game"`
	GameID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_attempt_player_game"`
	Guesses      StringList `gorm:"type:text;not null"` // 正規化済みの回答 (追記のみ)
	AttemptCount int        `gorm:"not null;default:0"`
	Won          bool       `gorm:"not null;default:false"`
	CompletedAt  *time.Time // 終了状態になった時だけ設定
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AttemptRecord) TableName() string {
	return "attempt_records"
}

// IsTerminal は勝利または回数上限に達しているかを返します
func (a *AttemptRecord) IsTerminal(limit int) bool {
	return a.Won || a.AttemptCount >= limit
}

// SessionAttempts は匿名プレイヤーが毎回送り返す、これまでの回答リスト。
// サーバーは保存せず、検証だけを行う
type SessionAttempts []string
