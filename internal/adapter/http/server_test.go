package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "github.com/couchcryptid/wind-etl/internal/adapter/http"
	"github.com/couchcryptid/wind-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

func newTestServer(readyErr error) *httpadapter.Server {
	return httpadapter.NewServer(":0", &mockReadiness{err: readyErr}, nil, slog.Default())
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(fmt.Errorf("not ready yet"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "not ready yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAllReady(t *testing.T) {
	ok := &mockReadiness{}
	notReady := &mockReadiness{err: fmt.Errorf("no heading received yet")}

	require.NoError(t, httpadapter.AllReady(ok, ok).CheckReadiness(context.Background()))
	require.NoError(t, httpadapter.AllReady().CheckReadiness(context.Background()))

	err := httpadapter.AllReady(ok, notReady).CheckReadiness(context.Background())
	require.Error(t, err)
	assert.Equal(t, "no heading received yet", err.Error())
}

func TestReadyzReportsFirstFailingCheck(t *testing.T) {
	ready := httpadapter.AllReady(&mockReadiness{}, &mockReadiness{err: fmt.Errorf("pipeline idle")})
	srv := httpadapter.NewServer(":0", ready, nil, slog.Default())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pipeline idle", body["error"])
}

func TestVesselEndpoint(t *testing.T) {
	tracker := domain.NewTracker()
	tracker.Apply(domain.HeadingTrue(1.5))
	tracker.Apply(domain.SpeedOverGround(3.2))
	tracker.Apply(domain.CourseOverGroundMagnetic(0.25))
	tracker.SetAnchor(true, 0.5)

	srv := httpadapter.NewServer(":0", tracker, tracker, slog.Default())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vessel", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1.5, body["headingTrue"])
	assert.Equal(t, 3.2, body["speedOverGround"])
	assert.Equal(t, 0.25, body["courseOverGroundMagnetic"])
	assert.Equal(t, true, body["anchored"])
	assert.Equal(t, 0.5, body["anchoredApparentBearing"])
}

func TestVesselEndpointOmitsMissingCourse(t *testing.T) {
	srv := httpadapter.NewServer(":0", &mockReadiness{}, domain.NewTracker(), slog.Default())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vessel", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "courseOverGroundMagnetic")
	assert.Equal(t, false, body["anchored"])
}

func TestVesselEndpointNotMountedWithoutSource(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vessel", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReadyzTracksHeading(t *testing.T) {
	tracker := domain.NewTracker()
	srv := httpadapter.NewServer(":0", tracker, nil, slog.Default())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	tracker.Apply(domain.HeadingTrue(0))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
