package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	auth "Annulus/internal/auth"
	zscore "Annulus/internal/calc/zscore"
	config "Annulus/internal/config"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg config.Config) (*httptest.Server, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	router := mux.NewRouter()
	require.NoError(t, HandleList(router, cfg, logger))
	srv := httptest.NewServer(CORS(cfg.AllowedOrigin, router))
	t.Cleanup(srv.Close)
	return srv, &logs
}

func baseConfig() config.Config {
	return config.Config{RateLimit: 100, RateBurst: 100, AllowedOrigin: "*"}
}

func TestCalcEndpoint(t *testing.T) {
	srv, logs := newTestServer(t, baseConfig())

	resp, err := http.Post(srv.URL+"/api/tools/zscore/calc", "application/json",
		strings.NewReader(`{"height_cm":100,"weight_kg":15}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var got zscore.AggregateResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.InDelta(t, 0.6461, got.BSA, 0.00005)

	assert.Contains(t, logs.String(), `"path":"/api/tools/zscore/calc"`)
	assert.Contains(t, logs.String(), `"status":200`)
}

func TestFormulasEndpointMethod(t *testing.T) {
	srv, _ := newTestServer(t, baseConfig())

	resp, err := http.Get(srv.URL + "/api/tools/zscore/formulas")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/tools/zscore/formulas", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestPreflight(t *testing.T) {
	srv, _ := newTestServer(t, baseConfig())

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/tools/zscore/calc", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestAuthEnabled(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.TokenKey = "test-key"
	cfg.AdminLogin = "admin"
	cfg.AdminPasswordHash = hash
	srv, _ := newTestServer(t, cfg)

	resp, err := http.Get(srv.URL + "/api/tools/zscore/formulas")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/login", "application/json",
		strings.NewReader(`{"login":"admin","password":"s3cret"}`))
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/tools/zscore/formulas", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+body["token"])
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), "Cantinotti")
}

func TestRateLimited(t *testing.T) {
	cfg := baseConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	srv, _ := newTestServer(t, cfg)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		resp, err := http.Get(srv.URL + "/api/tools/zscore/formulas")
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t, baseConfig())
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
