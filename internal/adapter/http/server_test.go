package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/palletworks/station-data-tools/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDataset struct {
	digits    map[string]string
	lookupErr error
	readyErr  error
}

func (f *fakeDataset) Lookup(_ context.Context, code string) (string, bool, error) {
	if f.lookupErr != nil {
		return "", false, f.lookupErr
	}
	digit, ok := f.digits[code]
	return digit, ok, nil
}

func (f *fakeDataset) CheckReadiness(context.Context) error { return f.readyErr }

func newTestServer(dataset *fakeDataset) *Server {
	return NewServer(":0", dataset, observability.NewMetricsForTesting(), slog.Default())
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(t, newTestServer(&fakeDataset{}), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestReadyEndpoint(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		rec := doRequest(t, newTestServer(&fakeDataset{}), "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not ready", func(t *testing.T) {
		dataset := &fakeDataset{readyErr: errors.New("seed database has no stations")}
		rec := doRequest(t, newTestServer(dataset), "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "no stations")
	})
}

func TestCheckDigitEndpoint(t *testing.T) {
	dataset := &fakeDataset{digits: map[string]string{"03-58-22-01": "14"}}

	t.Run("missing code parameter", func(t *testing.T) {
		rec := doRequest(t, newTestServer(dataset), "/v1/checkdigit")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("hit on canonical code", func(t *testing.T) {
		rec := doRequest(t, newTestServer(dataset), "/v1/checkdigit?code=03-58-22-01")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp lookupResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "03-58-22-01", resp.Normalized)
		assert.Equal(t, "14", resp.CheckDigit)
		assert.True(t, resp.Found)
	})

	t.Run("hit on shorthand code", func(t *testing.T) {
		rec := doRequest(t, newTestServer(dataset), "/v1/checkdigit?code=5822")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp lookupResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "5822", resp.Code)
		assert.Equal(t, "03-58-22-01", resp.Normalized)
		assert.Equal(t, "14", resp.CheckDigit)
	})

	t.Run("miss on unseeded station", func(t *testing.T) {
		rec := doRequest(t, newTestServer(dataset), "/v1/checkdigit?code=03-01-01-01")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp lookupResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Found)
		assert.Empty(t, resp.CheckDigit)
	})

	t.Run("unrecognized shape is a miss", func(t *testing.T) {
		rec := doRequest(t, newTestServer(dataset), "/v1/checkdigit?code=garbage")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp lookupResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "garbage", resp.Normalized)
		assert.False(t, resp.Found)
	})

	t.Run("lookup error is a 500", func(t *testing.T) {
		broken := &fakeDataset{lookupErr: errors.New("database is locked")}
		rec := doRequest(t, newTestServer(broken), "/v1/checkdigit?code=03-58-22-01")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "lookup failed")
	})
}

func TestMetricsEndpoint(t *testing.T) {
	rec := doRequest(t, newTestServer(&fakeDataset{}), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}
