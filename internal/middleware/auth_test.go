package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_5_wheelword/internal/config"
	"go_5_wheelword/internal/middleware"
	"go_5_wheelword/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// playerEcho はコンテキストのプレイヤーIDをボディに書き出します。匿名なら "anonymous"
var playerEcho = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if id, ok := middleware.GetPlayerIDFromContext(r.Context()); ok {
		w.Write([]byte(id.String()))
		return
	}
	w.Write([]byte("anonymous"))
})

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	return errResp.Error.Code
}

func TestOptionalJWTAuthMiddleware(t *testing.T) {
	cfg := config.Default()
	cfg.JWT.SecretKey = testSecret
	handler := middleware.OptionalJWTAuthMiddleware(cfg)(playerEcho)

	playerID := uuid.New()
	future := time.Now().Add(time.Hour)

	testCases := []struct {
		name         string
		authHeader   string
		expectedCode int
		expectedBody string
		expectedErr  string
	}{
		{
			name:         "正常系: ヘッダー無しは匿名で通過",
			expectedCode: http.StatusOK,
			expectedBody: "anonymous",
		},
		{
			name:         "正常系: 有効なトークン",
			authHeader:   "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), playerID.String(), future),
			expectedCode: http.StatusOK,
			expectedBody: playerID.String(),
		},
		{
			name:         "異常系: Bearer 以外の形式",
			authHeader:   "Basic abc",
			expectedCode: http.StatusForbidden,
			expectedErr:  "UNAUTHORIZED",
		},
		{
			name:         "異常系: 署名鍵が違う",
			authHeader:   "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), playerID.String(), future),
			expectedCode: http.StatusForbidden,
			expectedErr:  "INVALID_TOKEN",
		},
		{
			name:         "異常系: 期限切れ",
			authHeader:   "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), playerID.String(), time.Now().Add(-time.Hour)),
			expectedCode: http.StatusForbidden,
			expectedErr:  "INVALID_TOKEN",
		},
		{
			name:         "異常系: alg none は拒否",
			authHeader:   "Bearer " + signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, playerID.String(), future),
			expectedCode: http.StatusForbidden,
			expectedErr:  "INVALID_TOKEN",
		},
		{
			name:         "異常系: subject がUUIDではない",
			authHeader:   "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "not-a-uuid", future),
			expectedCode: http.StatusForbidden,
			expectedErr:  "INVALID_TOKEN",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedErr != "" {
				assert.Equal(t, tc.expectedErr, errorCode(t, rr.Body.Bytes()))
				return
			}
			assert.Equal(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestRequirePlayer(t *testing.T) {
	handler := middleware.RequirePlayer(playerEcho)

	t.Run("異常系: 匿名は401", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, rr.Body.Bytes()))
	})

	t.Run("正常系: プレイヤーIDがあれば通過", func(t *testing.T) {
		playerID := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(middleware.WithPlayerID(req.Context(), playerID))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, playerID.String(), rr.Body.String())
	})

	t.Run("異常系: uuid.Nil は匿名扱い", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(middleware.WithPlayerID(req.Context(), uuid.Nil))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestDevPlayerContextMiddleware(t *testing.T) {
	handler := middleware.DevPlayerContextMiddleware(playerEcho)
	playerID := uuid.New()

	testCases := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{name: "正常系: ヘッダー無しは匿名", expectedCode: http.StatusOK, expectedBody: "anonymous"},
		{name: "正常系: UUIDを設定", header: playerID.String(), expectedCode: http.StatusOK, expectedBody: playerID.String()},
		{name: "異常系: UUIDでない値は403", header: "player-1", expectedCode: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("X-Player-ID", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.Equal(t, "UNAUTHORIZED", errorCode(t, rr.Body.Bytes()))
			}
		})
	}
}

func TestPlayerIDPtr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, middleware.PlayerIDPtr(req.Context()))

	playerID := uuid.New()
	ctx := middleware.WithPlayerID(req.Context(), playerID)
	got := middleware.PlayerIDPtr(ctx)
	require.NotNil(t, got)
	assert.Equal(t, playerID, *got)
}
