package service

import (
	"errors"

	"go_5_wheelword/internal/model"
)

// gameError はゲームの検証エラーをクライアント向けの AppError に包みます
func gameError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidCharacters):
		return model.NewAppError("INVALID_CHARACTERS", "使用できない文字が含まれています。", "guess", err)
	case errors.Is(err, model.ErrLengthMismatch):
		return model.NewAppError("LENGTH_MISMATCH", "回答の文字数がお題と一致しません。", "guess", err)
	case errors.Is(err, model.ErrDuplicateGuess):
		return model.NewAppError("DUPLICATE_GUESS", "この単語は既に回答済みです。", "guess", err)
	case errors.Is(err, model.ErrAttemptsExhausted):
		return model.NewAppError("ATTEMPTS_EXHAUSTED", "回答回数の上限に達しています。", "session_attempts", err)
	case errors.Is(err, model.ErrNoEligibleWords):
		return model.NewAppError("NO_ELIGIBLE_WORDS", "出題できる単語がありません。", "", err)
	case errors.Is(err, model.ErrGameNotFound):
		return model.NewAppError("GAME_NOT_FOUND", "指定された日のゲームはありません。", "date", err)
	case errors.Is(err, model.ErrGameNotTerminal):
		return model.NewAppError("GAME_NOT_FINISHED", "終了していないゲームはシェアできません。", "won", err)
	default:
		return err
	}
}

// invalidInput は入力エラーを AppError にします
func invalidInput(code, message, field string) error {
	return model.NewAppError(code, message, field, model.ErrInvalidInput)
}
