package model

import "github.com/google/uuid"

type ContextKey string

const (
	PlayerIDKey ContextKey = "playerID"
)

// TodayResponse は今日のゲームの公開情報 (答えは含めない)
type TodayResponse struct {
	GameNumber int    `json:"game_number"`
	WordLength int    `json:"word_length"`
	GameDate   string `json:"game_date"`
}

// GuessRequest は回答送信リクエストのDTO
type GuessRequest struct {
	Guess           string   `json:"guess" validate:"required,max=32"`
	SessionAttempts []string `json:"session_attempts,omitempty" validate:"omitempty,max=32,dive,max=32"`
}

// GuessResult は回答の判定結果
type GuessResult struct {
	Guess        string         `json:"guess"`
	Feedback     []string       `json:"feedback"`
	IsCorrect    bool           `json:"is_correct"`
	AttemptsUsed int            `json:"attempts_used"`
	GameOver     bool           `json:"game_over"`
	Won          bool           `json:"won"`
	Attempts     []string       `json:"attempts"`               // 匿名プレイヤーが次回送り返すリスト
	CorrectWord  string         `json:"correct_word,omitempty"` // 終了時のみ
	Stats        *StatsResponse `json:"stats,omitempty"`        // 終了時かつ認証済みのみ
}

// GameStateResponse は認証済みプレイヤーの当日の状態
type GameStateResponse struct {
	GameNumber  int        `json:"game_number"`
	WordLength  int        `json:"word_length"`
	GameDate    string     `json:"game_date"`
	Attempts    []string   `json:"attempts"`
	Feedbacks   [][]string `json:"feedbacks"`
	GameOver    bool       `json:"game_over"`
	Won         bool       `json:"won"`
	CorrectWord string     `json:"correct_word,omitempty"`
}

// ShareRequest はシェア文生成リクエストのDTO
type ShareRequest struct {
	GameNumber int        `json:"game_number" validate:"required,min=1"`
	Attempts   []string   `json:"attempts" validate:"required,min=1"`
	Feedbacks  [][]string `json:"feedbacks" validate:"required,min=1,dive,required,dive,oneof=correct present absent"`
	Won        *bool      `json:"won" validate:"required"`
}

// ShareResponse はシェア文
type ShareResponse struct {
	Text string `json:"text"`
}

// PlayerRef はログ用に匿名/認証済みを区別します
func PlayerRef(playerID *uuid.UUID) string {
	if playerID == nil {
		return "anonymous"
	}
	return playerID.String()
}
