package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/WatchBeam/clock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/crypto"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/middleware"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/model"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/repository"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/service"
)

const testSecret = "handler-test-secret"

// newTestRouter wires the full API surface the way cmd/api does, minus
// rate limiting.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	mockClock := clock.NewMockClock()
	store := repository.NewSessionStore(mockClock, time.Hour, 5)

	genHandler := NewGeneratorHandler(service.NewGeneratorService(nil, mockClock, store))
	sessionHandler := NewSessionHandler(service.NewSessionService(store, mockClock, testSecret, time.Hour))
	historyHandler := NewHistoryHandler(service.NewHistoryService(store, mockClock))
	hashHandler := NewHashHandler(service.NewHashService(crypto.NewHasher(crypto.DefaultParams())))

	r := chi.NewRouter()
	r.Post("/api/v1/session", sessionHandler.HandleCreate)

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalSession(testSecret))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/strength", genHandler.HandleStrength)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(testSecret))
		r.Get("/api/v1/history", historyHandler.HandleList)
		r.Delete("/api/v1/history", historyHandler.HandleClear)
		r.Get("/api/v1/history/export", historyHandler.HandleExport)
	})

	r.Post("/api/v1/hash", hashHandler.HandleHash)
	r.Post("/api/v1/hash/verify", hashHandler.HandleVerify)

	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestGenerateEndpoint_Defaults(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/generate", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[model.GenerateResponse](t, rec)
	assert.Len(t, resp.Password, 16)
	assert.Equal(t, 16, resp.Length)
	assert.NotEmpty(t, resp.Label)
}

func TestGenerateEndpoint_CustomRequest(t *testing.T) {
	router := newTestRouter(t)
	no := false

	rec := doRequest(t, router, http.MethodPost, "/api/v1/generate", "", model.GenerateRequest{
		Length:           24,
		Symbols:          &no,
		ExcludeAmbiguous: true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[model.GenerateResponse](t, rec)
	assert.Len(t, resp.Password, 24)
	assert.NotContains(t, resp.Password, "0")
	assert.NotContains(t, resp.Password, "O")
	assert.NotContains(t, resp.Password, "1")
	assert.NotContains(t, resp.Password, "l")
	assert.NotContains(t, resp.Password, "I")
}

func TestGenerateEndpoint_Validation(t *testing.T) {
	router := newTestRouter(t)
	no := false

	rec := doRequest(t, router, http.MethodPost, "/api/v1/generate", "", model.GenerateRequest{Length: 500})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/generate", "", model.GenerateRequest{
		Length:    16,
		Uppercase: &no,
		Lowercase: &no,
		Digits:    &no,
		Symbols:   &no,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeBody[map[string]string](t, rec)
	assert.Contains(t, errBody["error"], "category")
}

func TestGenerateEndpoint_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStrengthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/strength", "", model.StrengthRequest{Password: "password123"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[model.StrengthResponse](t, rec)
	assert.Equal(t, 5, resp.Score)
	assert.Equal(t, "Very weak", resp.Label)
}

func TestHistoryEndpoint_RequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/history", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/history", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionHistoryFlow(t *testing.T) {
	router := newTestRouter(t)

	// Create a session.
	rec := doRequest(t, router, http.MethodPost, "/api/v1/session", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	sess := decodeBody[model.SessionResponse](t, rec)
	require.NotEmpty(t, sess.Token)
	require.NotEmpty(t, sess.SessionID)

	// Generate twice with the session token.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/generate", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeBody[model.GenerateResponse](t, rec)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/generate", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeBody[model.GenerateResponse](t, rec)

	// History lists both, newest first.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/history", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hist := decodeBody[model.HistoryResponse](t, rec)
	require.Equal(t, 2, hist.Count)
	assert.Equal(t, 5, hist.Capacity)
	assert.Equal(t, second.Password, hist.Entries[0].Password)
	assert.Equal(t, first.Password, hist.Entries[1].Password)

	// Export as text: one password per line, served as a download.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/history/export?format=txt", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `attachment; filename="lockforge-history-`)
	assert.Equal(t, second.Password+"\n"+first.Password+"\n", rec.Body.String())

	// Clear, then confirm empty.
	rec = doRequest(t, router, http.MethodDelete, "/api/v1/history", sess.Token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/history", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hist = decodeBody[model.HistoryResponse](t, rec)
	assert.Equal(t, 0, hist.Count)
}

func TestHistoryEndpoint_BoundedAtCapacity(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/session", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	sess := decodeBody[model.SessionResponse](t, rec)

	for i := 0; i < 8; i++ {
		rec = doRequest(t, router, http.MethodPost, "/api/v1/generate", sess.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/v1/history", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hist := decodeBody[model.HistoryResponse](t, rec)
	assert.Equal(t, 5, hist.Count)
	assert.Len(t, hist.Entries, 5)
}

func TestExportEndpoint_UnknownFormat(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/session", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	sess := decodeBody[model.SessionResponse](t, rec)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/history/export?format=xlsx", sess.Token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportEndpoint_CSV(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/session", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	sess := decodeBody[model.SessionResponse](t, rec)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/generate", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/history/export?format=csv", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "id,password,score,label,created_at\n"))
}

func TestHashEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/hash", "", model.HashRequest{Password: "hunter2"})
	require.Equal(t, http.StatusOK, rec.Code)
	hashed := decodeBody[model.HashResponse](t, rec)
	require.True(t, strings.HasPrefix(hashed.Hash, "$argon2id$"))

	rec = doRequest(t, router, http.MethodPost, "/api/v1/hash/verify", "", model.VerifyRequest{
		Password: "hunter2",
		Hash:     hashed.Hash,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	verified := decodeBody[model.VerifyResponse](t, rec)
	assert.True(t, verified.Match)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/hash/verify", "", model.VerifyRequest{
		Password: "wrong",
		Hash:     hashed.Hash,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	verified = decodeBody[model.VerifyResponse](t, rec)
	assert.False(t, verified.Match)
}

func TestHashEndpoint_Validation(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/hash", "", model.HashRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/hash/verify", "", model.VerifyRequest{
		Password: "x",
		Hash:     "mangled",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
