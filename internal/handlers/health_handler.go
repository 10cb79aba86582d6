package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_5_wheelword/internal/middleware"
	"go_5_wheelword/internal/model"
	"go_5_wheelword/internal/webutil"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// CheckHealth はDBへのPingが通れば200を返します
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.Error("Health check failed", slog.Any("error", err))
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, model.APIErrorResponse{
			Error: model.ErrorDetail{Code: "DB_UNAVAILABLE", Message: "データベースに接続できません。"},
		}, logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}
