// internal/handlers/game_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"go_5_wheelword/internal/model"
	"go_5_wheelword/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const apiBase = "/api/v1/wheelword"

// appErr はサービスが返す形のエラーを作ります
func appErr(code, field string, err error) error {
	return model.NewAppError(code, "test message", field, err)
}

func TestGameHandler_GetToday(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(m *mocks.GameService)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "正常系: 今日のゲーム",
			setupMock: func(m *mocks.GameService) {
				m.On("Today", mock.Anything).Return(&model.TodayResponse{GameNumber: 3, WordLength: 5, GameDate: "2025-05-01"}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "異常系: 出題できる単語が無い",
			setupMock: func(m *mocks.GameService) {
				m.On("Today", mock.Anything).Return(nil, appErr("NO_ELIGIBLE_WORDS", "", model.ErrNoEligibleWords)).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "NO_ELIGIBLE_WORDS",
		},
		{
			name: "異常系: DBエラーは汎用エラー",
			setupMock: func(m *mocks.GameService) {
				m.On("Today", mock.Anything).Return(nil, errors.New("connection reset")).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewGameService(t)
			tc.setupMock(svc)
			server := newTestServer(t, svc)

			body := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: apiBase + "/today"}, tc.expectedCode)
			if tc.expectedErr != "" {
				verifyErrorResponse(t, body, tc.expectedErr)
				return
			}
			var resp model.TodayResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Equal(t, 3, resp.GameNumber)
			assert.Equal(t, 5, resp.WordLength)
			assert.NotContains(t, string(body), "correct_word", "答えは含めない")
		})
	}
}

func TestGameHandler_PostGuess(t *testing.T) {
	playerID := uuid.New()
	okResult := &model.GuessResult{
		Guess:        "GATOS",
		Feedback:     []string{"absent", "absent", "absent", "present", "absent"},
		AttemptsUsed: 1,
		Attempts:     []string{"GATOS"},
	}

	tests := []struct {
		name         string
		headers      map[string]string
		body         interface{}
		setupMock    func(m *mocks.GameService)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "正常系: 匿名プレイ",
			body: model.GuessRequest{Guess: "gatos", SessionAttempts: []string{"libro"}},
			setupMock: func(m *mocks.GameService) {
				m.On("SubmitGuess", mock.Anything, "gatos", (*uuid.UUID)(nil), model.SessionAttempts{"libro"}).Return(okResult, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "正常系: 認証済みプレイヤー",
			headers: map[string]string{"X-Player-ID": playerID.String()},
			body:    model.GuessRequest{Guess: "gatos"},
			setupMock: func(m *mocks.GameService) {
				m.On("SubmitGuess", mock.Anything, "gatos", &playerID, model.SessionAttempts(nil)).Return(okResult, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "異常系: 回答が空",
			body:         model.GuessRequest{Guess: ""},
			setupMock:    func(m *mocks.GameService) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name:         "異常系: JSONが壊れている",
			body:         `{"guess":`,
			setupMock:    func(m *mocks.GameService) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_REQUEST_BODY",
		},
		{
			name:         "異常系: 不明なフィールド",
			body:         `{"guess":"gatos","secret":"x"}`,
			setupMock:    func(m *mocks.GameService) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_REQUEST_BODY",
		},
		{
			name:         "異常系: X-Player-ID の形式が不正",
			headers:      map[string]string{"X-Player-ID": "not-a-uuid"},
			body:         model.GuessRequest{Guess: "gatos"},
			setupMock:    func(m *mocks.GameService) {},
			expectedCode: http.StatusForbidden,
			expectedErr:  "UNAUTHORIZED",
		},
	}

	serviceErrors := []struct {
		code   string
		err    error
		status int
	}{
		{"INVALID_CHARACTERS", model.ErrInvalidCharacters, http.StatusBadRequest},
		{"LENGTH_MISMATCH", model.ErrLengthMismatch, http.StatusBadRequest},
		{"DUPLICATE_GUESS", model.ErrDuplicateGuess, http.StatusConflict},
		{"ATTEMPTS_EXHAUSTED", model.ErrAttemptsExhausted, http.StatusBadRequest},
	}
	for _, se := range serviceErrors {
		se := se
		tests = append(tests, struct {
			name         string
			headers      map[string]string
			body         interface{}
			setupMock    func(m *mocks.GameService)
			expectedCode int
			expectedErr  string
		}{
			name: fmt.Sprintf("異常系: サービスが %s を返す", se.code),
			body: model.GuessRequest{Guess: "gatos"},
			setupMock: func(m *mocks.GameService) {
				m.On("SubmitGuess", mock.Anything, "gatos", (*uuid.UUID)(nil), model.SessionAttempts(nil)).
					Return(nil, fmt.Errorf("wrapped: %w", appErr(se.code, "guess", se.err))).Once()
			},
			expectedCode: se.status,
			expectedErr:  se.code,
		})
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewGameService(t)
			tc.setupMock(svc)
			server := newTestServer(t, svc)

			body := sendRequest(t, server, httpRequestDetails{
				Method:  http.MethodPost,
				Path:    apiBase + "/guess",
				Body:    tc.body,
				Headers: tc.headers,
			}, tc.expectedCode)
			if tc.expectedErr != "" {
				verifyErrorResponse(t, body, tc.expectedErr)
				return
			}
			var resp model.GuessResult
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Equal(t, okResult.Feedback, resp.Feedback)
			assert.Equal(t, okResult.Attempts, resp.Attempts)
		})
	}
}

func TestGameHandler_GetState(t *testing.T) {
	playerID := uuid.New()
	state := &model.GameStateResponse{GameNumber: 2, WordLength: 5, GameDate: "2025-05-01", Attempts: []string{}, Feedbacks: [][]string{}}

	tests := []struct {
		name         string
		headers      map[string]string
		query        string
		setupMock    func(m *mocks.GameService)
		expectedCode int
		expectedErr  string
	}{
		{
			name:    "正常系: 今日の状態",
			headers: map[string]string{"X-Player-ID": playerID.String()},
			setupMock: func(m *mocks.GameService) {
				m.On("GetState", mock.Anything, playerID, "").Return(state, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "正常系: 過去日の状態",
			headers: map[string]string{"X-Player-ID": playerID.String()},
			query:   "?date=2025-04-30",
			setupMock: func(m *mocks.GameService) {
				m.On("GetState", mock.Anything, playerID, "2025-04-30").Return(state, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "異常系: 匿名は401",
			setupMock:    func(m *mocks.GameService) {},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "UNAUTHORIZED",
		},
		{
			name:    "異常系: ゲームの無い日",
			headers: map[string]string{"X-Player-ID": playerID.String()},
			query:   "?date=2020-01-01",
			setupMock: func(m *mocks.GameService) {
				m.On("GetState", mock.Anything, playerID, "2020-01-01").Return(nil, appErr("GAME_NOT_FOUND", "date", model.ErrGameNotFound)).Once()
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "GAME_NOT_FOUND",
		},
		{
			name:    "異常系: 未来の日付",
			headers: map[string]string{"X-Player-ID": playerID.String()},
			query:   "?date=2999-01-01",
			setupMock: func(m *mocks.GameService) {
				m.On("GetState", mock.Anything, playerID, "2999-01-01").Return(nil, appErr("INVALID_DATE", "date", model.ErrInvalidInput)).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_DATE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewGameService(t)
			tc.setupMock(svc)
			server := newTestServer(t, svc)

			body := sendRequest(t, server, httpRequestDetails{
				Method:  http.MethodGet,
				Path:    apiBase + "/state" + tc.query,
				Headers: tc.headers,
			}, tc.expectedCode)
			if tc.expectedErr != "" {
				verifyErrorResponse(t, body, tc.expectedErr)
				return
			}
			var resp model.GameStateResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Equal(t, 2, resp.GameNumber)
		})
	}
}

func TestGameHandler_GetStats(t *testing.T) {
	playerID := uuid.New()
	svc := mocks.NewGameService(t)
	svc.On("GetStats", mock.Anything, playerID).Return(&model.StatsResponse{
		GamesPlayed:     4,
		GamesWon:        3,
		WinPercentage:   75,
		CurrentStreak:   0,
		MaxStreak:       2,
		WinDistribution: []int{0, 1, 2, 0, 0, 0},
	}, nil).Once()
	server := newTestServer(t, svc)

	body := sendRequest(t, server, httpRequestDetails{
		Method:  http.MethodGet,
		Path:    apiBase + "/stats",
		Headers: map[string]string{"X-Player-ID": playerID.String()},
	}, http.StatusOK)

	var resp model.StatsResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, 75, resp.WinPercentage)
	assert.Equal(t, []int{0, 1, 2, 0, 0, 0}, resp.WinDistribution)

	t.Run("異常系: 匿名は401", func(t *testing.T) {
		body := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: apiBase + "/stats"}, http.StatusUnauthorized)
		verifyErrorResponse(t, body, "UNAUTHORIZED")
	})
}

func TestGameHandler_PostShare(t *testing.T) {
	won := true
	validReq := model.ShareRequest{
		GameNumber: 12,
		Attempts:   []string{"PERRO"},
		Feedbacks:  [][]string{{"correct", "correct", "correct", "correct", "correct"}},
		Won:        &won,
	}

	tests := []struct {
		name         string
		body         interface{}
		setupMock    func(m *mocks.GameService)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "正常系: シェア文を返す",
			body: validReq,
			setupMock: func(m *mocks.GameService) {
				m.On("Share", mock.Anything, &validReq).Return(&model.ShareResponse{Text: "WheelWord #12 1/6\n\n🟩🟩🟩🟩🟩\n\nhttps://wheelword.app"}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "異常系: 不明な判定はバリデーションで弾く",
			body:         `{"game_number":12,"attempts":["PERRO"],"feedbacks":[["green"]],"won":true}`,
			setupMock:    func(m *mocks.GameService) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name:         "異常系: won が無い",
			body:         `{"game_number":12,"attempts":["PERRO"],"feedbacks":[["correct"]]}`,
			setupMock:    func(m *mocks.GameService) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name: "異常系: 終了していないゲーム",
			body: validReq,
			setupMock: func(m *mocks.GameService) {
				m.On("Share", mock.Anything, &validReq).Return(nil, appErr("GAME_NOT_FINISHED", "won", model.ErrGameNotTerminal)).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "GAME_NOT_FINISHED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewGameService(t)
			tc.setupMock(svc)
			server := newTestServer(t, svc)

			body := sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: apiBase + "/share", Body: tc.body}, tc.expectedCode)
			if tc.expectedErr != "" {
				verifyErrorResponse(t, body, tc.expectedErr)
				return
			}
			var resp model.ShareResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.True(t, strings.HasPrefix(resp.Text, "WheelWord #12 1/6"))
		})
	}
}
