package puzzle

import (
	"fmt"
	"strings"

	"go_5_wheelword/internal/model"
)

var feedbackSymbols = map[Feedback]string{
	FeedbackCorrect: "🟩",
	FeedbackPresent: "🟨",
	FeedbackAbsent:  "⬛",
}

// ShareFormatter は終了したゲームの絵文字サマリーを作ります
type ShareFormatter struct {
	Title        string
	FooterURL    string
	AttemptLimit int
}

// Format はヘッダー、回答ごとの絵文字行、フッターの順に描画します。
// 勝利しているか、回数上限まで回答していない入力は受け付けない
func (f ShareFormatter) Format(gameNumber int, rows [][]Feedback, won bool) (string, error) {
	if len(rows) == 0 || len(rows) > f.AttemptLimit {
		return "", model.ErrInvalidInput
	}
	if !won && len(rows) < f.AttemptLimit {
		return "", model.ErrGameNotTerminal
	}

	score := "X"
	if won {
		score = fmt.Sprint(len(rows))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s #%d %s/%d\n\n", f.Title, gameNumber, score, f.AttemptLimit)
	for _, row := range rows {
		if len(row) == 0 {
			return "", model.ErrInvalidInput
		}
		for _, fb := range row {
			symbol, ok := feedbackSymbols[fb]
			if !ok {
				return "", model.ErrInvalidInput
			}
			b.WriteString(symbol)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(f.FooterURL)
	return b.String(), nil
}
