// internal/model/word.go
package model

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// WordEntry はお題候補の単語と利用状況を表します
type WordEntry struct {
	WordID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"word_id"`
	Text       string     `gorm:"type:varchar(32);not null;uniqueIndex" json:"text"` // 大文字に正規化済み
	Length     int        `gorm:"not null;index" json:"length"`                      // Textの文字数 (rune数)
	Category   string     `gorm:"type:varchar(64);not null;default:''" json:"category"`
	TimesUsed  int        `gorm:"not null;default:0;index:idx_words_usage,priority:1" json:"times_used"`
	LastUsedAt *time.Time `gorm:"index:idx_words_usage,priority:2" json:"last_used_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (WordEntry) TableName() string {
	return "words"
}

// BeforeSave は Text を回答と同じ規則で正規化し、方言に依存しない長さフィルタのために Length を維持します
func (w *WordEntry) BeforeSave(tx *gorm.DB) error {
	w.Text = NormalizeText(w.Text)
	if w.Text == "" {
		return fmt.Errorf("word text is empty: %w", ErrInvalidInput)
	}
	w.Length = utf8.RuneCountInString(w.Text)
	return nil
}

// NormalizeText は前後の空白を除き、NFCに合成してからスペイン語の規則で大文字にします。
// Caser はゴルーチン間で共有できないので呼び出しごとに作る
func NormalizeText(raw string) string {
	s := norm.NFC.String(strings.TrimSpace(raw))
	return cases.Upper(language.Spanish).String(s)
}
