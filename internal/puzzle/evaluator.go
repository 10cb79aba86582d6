package puzzle

// Feedback は1文字ごとの判定
type Feedback string

const (
	FeedbackCorrect Feedback = "correct" // 文字も位置も一致
	FeedbackPresent Feedback = "present" // 文字はあるが位置が違う
	FeedbackAbsent  Feedback = "absent"  // 残りの答えの文字に無い
)

// consumed は判定済みの位置を示す印。正規化後の文字としては現れない
const consumed rune = -1

// ParseFeedback は文字列表現を Feedback に変換します
func ParseFeedback(s string) (Feedback, bool) {
	switch f := Feedback(s); f {
	case FeedbackCorrect, FeedbackPresent, FeedbackAbsent:
		return f, true
	}
	return "", false
}

// Evaluate は guess を secret に対して判定します。長さが等しいことは呼び出し側が保証する。
//
// 1回目の走査で位置一致を確定させ、両側の文字を消費する。2回目の走査で残った
// guess の文字ごとに、残った secret の文字を左から探して最初の一致だけを消費する。
func Evaluate(guess, secret string) []Feedback {
	remainingGuess := []rune(guess)
	remainingSecret := []rune(secret)

	feedback := make([]Feedback, len(remainingGuess))
	for i := range feedback {
		feedback[i] = FeedbackAbsent
	}

	for i, r := range remainingGuess {
		if i < len(remainingSecret) && r == remainingSecret[i] {
			feedback[i] = FeedbackCorrect
			remainingGuess[i] = consumed
			remainingSecret[i] = consumed
		}
	}

	for i, r := range remainingGuess {
		if r == consumed {
			continue
		}
		for j, s := range remainingSecret {
			if s == r {
				feedback[i] = FeedbackPresent
				remainingSecret[j] = consumed
				break
			}
		}
	}

	return feedback
}

// IsCorrect は正規化済みの guess と secret が完全に一致するかを返します
func IsCorrect(guess, secret string) bool {
	return guess == secret
}

// Strings は判定をレスポンス用の文字列に変換します
func Strings(feedback []Feedback) []string {
	out := make([]string, len(feedback))
	for i, f := range feedback {
		out[i] = string(f)
	}
	return out
}
