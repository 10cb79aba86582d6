// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_5_wheelword/internal/model"
	"go_5_wheelword/internal/webutil"

	"github.com/google/uuid"
)

// DevPlayerContextMiddleware は開発時用ミドルウェアです。
// X-Player-ID ヘッダーがあればUUIDとしてコンテキストに設定します。
// ヘッダーが無ければ匿名プレイ。トークン検証は行いません。
func DevPlayerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		playerIDStr := r.Header.Get("X-Player-ID")
		if playerIDStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		playerID, err := uuid.Parse(playerIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-Player-ID format", "value", playerIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-Player-IDの形式が正しくありません。", "X-Player-ID", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		logger.Debug("[DEV AUTH] Player ID set to context (no validation)", "player_id", playerID)
		ctx := WithPlayerID(r.Context(), playerID)
		ctx = WithLogger(ctx, logger.With("player_id", playerID.String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
