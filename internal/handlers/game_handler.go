// internal/handlers/game_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_wheelword/internal/middleware"
	"go_5_wheelword/internal/model"
	"go_5_wheelword/internal/service"
	"go_5_wheelword/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type GameHandler struct {
	service service.GameService
}

func NewGameHandler(s service.GameService) *GameHandler {
	return &GameHandler{service: s}
}

// RegisterRoutes は /api/v1/wheelword 配下のルートを登録します。
// state と stats は認証済みプレイヤーのみ
func (h *GameHandler) RegisterRoutes(r chi.Router) {
	r.Get("/today", h.GetToday)
	r.Post("/guess", h.PostGuess)
	r.Post("/share", h.PostShare)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequirePlayer)
		r.Get("/state", h.GetState)
		r.Get("/stats", h.GetStats)
	})
}

// GetToday は今日のゲームの番号と文字数を返します
func (h *GameHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetToday"))

	resp, err := h.service.Today(r.Context())
	if err != nil {
		logger.Warn("Failed to resolve today's game", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostGuess は回答を受け付けます。認証が無ければ session_attempts をこれまでの回答として扱う
func (h *GameHandler) PostGuess(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostGuess"))

	var req model.GuessRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	playerID := middleware.PlayerIDPtr(r.Context())
	result, err := h.service.SubmitGuess(r.Context(), req.Guess, playerID, model.SessionAttempts(req.SessionAttempts))
	if err != nil {
		logger.Warn("Guess rejected", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetState は当日 (または date で指定した過去日) のプレイヤーの状態を返します
func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetState"))

	playerID, ok := middleware.GetPlayerIDFromContext(r.Context())
	if !ok {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証が必要です。", "", model.ErrUnauthorized))
		return
	}

	resp, err := h.service.GetState(r.Context(), playerID, r.URL.Query().Get("date"))
	if err != nil {
		logger.Warn("Failed to load game state", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetStats はプレイヤーの累計成績を返します
func (h *GameHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetStats"))

	playerID, ok := middleware.GetPlayerIDFromContext(r.Context())
	if !ok {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証が必要です。", "", model.ErrUnauthorized))
		return
	}

	resp, err := h.service.GetStats(r.Context(), playerID)
	if err != nil {
		logger.Error("Failed to load player stats", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostShare は終了したゲームのシェア文を作ります
func (h *GameHandler) PostShare(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostShare"))

	var req model.ShareRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Share(r.Context(), &req)
	if err != nil {
		logger.Warn("Failed to build share text", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
