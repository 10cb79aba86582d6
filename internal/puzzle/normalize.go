// Package puzzle はI/Oを持たないゲームのルール (判定・正規化・連勝・シェア文) をまとめます。
package puzzle

import "go_5_wheelword/internal/model"

// Alphabet は回答に使える文字の集合
type Alphabet struct {
	letters map[rune]struct{}
}

// NewAlphabet は letters を正規化した上で集合を作ります
func NewAlphabet(letters string) *Alphabet {
	a := &Alphabet{letters: make(map[rune]struct{})}
	for _, r := range Normalize(letters) {
		a.letters[r] = struct{}{}
	}
	return a
}

// Contains は s のすべての文字がアルファベットに含まれるかを返します。空文字は false
func (a *Alphabet) Contains(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := a.letters[r]; !ok {
			return false
		}
	}
	return true
}

// Normalize は回答を単語コーパスと同じ形 (NFC・大文字) にします
func Normalize(raw string) string {
	return model.NormalizeText(raw)
}

// NormalizeAll はリストの各要素を Normalize します
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		out = append(out, Normalize(s))
	}
	return out
}
