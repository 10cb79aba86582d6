package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_5_wheelword/internal/config"
	"go_5_wheelword/internal/model"
	"go_5_wheelword/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// OptionalJWTAuthMiddleware は Bearer トークンがあれば検証してプレイヤーIDをコンテキストに入れます。
// ヘッダーが無ければ匿名プレイとしてそのまま通す
func OptionalJWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			playerID, err := parsePlayerToken(headerParts[1], []byte(cfg.JWT.SecretKey))
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := WithPlayerID(r.Context(), playerID)
			ctx = WithLogger(ctx, logger.With("player_id", playerID.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePlayer は認証済みプレイヤーだけを通します
func RequirePlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetPlayerIDFromContext(r.Context()); !ok {
			logger := GetLogger(r.Context())
			logger.Warn("Unauthorized access attempt")
			appErr := model.NewAppError("UNAUTHORIZED", "ログインが必要です。", "", model.ErrUnauthorized)
			webutil.HandleError(w, logger, appErr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parsePlayerToken(tokenString string, secret []byte) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, err
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(subject)
}

// WithPlayerID はプレイヤーIDをコンテキストに格納します
func WithPlayerID(ctx context.Context, playerID uuid.UUID) context.Context {
	return context.WithValue(ctx, model.PlayerIDKey, playerID)
}

// GetPlayerIDFromContext は認証済みプレイヤーのIDを返します。匿名なら false
func GetPlayerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value, ok := ctx.Value(model.PlayerIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		return uuid.Nil, false
	}
	return value, true
}

// PlayerIDPtr はサービス層に渡す形 (匿名なら nil) でプレイヤーIDを返します
func PlayerIDPtr(ctx context.Context) *uuid.UUID {
	id, ok := GetPlayerIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &id
}
