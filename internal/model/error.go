// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション共通のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
	ErrUnauthorized   = errors.New("unauthorized")
)

// ゲーム固有のエラー。いずれもクライアントに返すもので、プロセスを止めるものではない
var (
	ErrInvalidCharacters = errors.New("guess contains characters outside the allowed alphabet")
	ErrLengthMismatch    = errors.New("guess length differs from the secret word length")
	ErrDuplicateGuess    = errors.New("guess already attempted in this game")
	ErrAttemptsExhausted = errors.New("no attempts remaining")
	ErrNoEligibleWords   = errors.New("no eligible words in the corpus for the allowed length range")
	ErrGameNotFound      = errors.New("daily game not found")
	ErrGameNotTerminal   = errors.New("game is not finished")
)

// AppError はクライアントに返す情報と根本原因をまとめたエラー
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail はレスポンス用の詳細を返します
func (e *AppError) Detail() ErrorDetail {
	return ErrorDetail{Code: e.Code, Message: e.Message, Field: e.Field}
}

// ErrorDetail はエラーレスポンスの中身
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
