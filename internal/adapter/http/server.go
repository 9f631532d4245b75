package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/wind-etl/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// VesselSource exposes the tracked vessel state.
type VesselSource interface {
	Snapshot() domain.VesselState
}

// AllReady combines checkers; the first failure wins.
func AllReady(checkers ...ReadinessChecker) ReadinessChecker {
	return readinessChain(checkers)
}

type readinessChain []ReadinessChecker

func (c readinessChain) CheckReadiness(ctx context.Context) error {
	for _, checker := range c {
		if err := checker.CheckReadiness(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Server serves the operational endpoints of the wind service.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer registers /healthz, /readyz, /vessel and /metrics. vessel may be
// nil, in which case /vessel is not mounted.
func NewServer(addr string, ready ReadinessChecker, vessel VesselSource, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	mux.HandleFunc("GET /readyz", s.handleReady(ready))
	if vessel != nil {
		mux.HandleFunc("GET /vessel", handleVessel(vessel))
	}
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start listens until Shutdown; it then returns http.ErrServerClosed.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP lets tests drive the mux without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			s.logger.Debug("readiness check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// vesselView is the JSON shape of /vessel. Field names follow the
// navigation feed's field names.
type vesselView struct {
	HeadingTrue              float64  `json:"headingTrue"`
	HeadingMagnetic          float64  `json:"headingMagnetic"`
	CourseOverGroundMagnetic *float64 `json:"courseOverGroundMagnetic,omitempty"`
	SpeedOverGround          float64  `json:"speedOverGround"`
	AirTemperature           float64  `json:"airTemperature"`
	RelativeHumidity         float64  `json:"relativeHumidity"`
	Anchored                 bool     `json:"anchored"`
	AnchoredApparentBearing  float64  `json:"anchoredApparentBearing"`
}

func handleVessel(src VesselSource) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		st := src.Snapshot()
		writeJSON(w, http.StatusOK, vesselView{
			HeadingTrue:              st.HeadingTrue,
			HeadingMagnetic:          st.HeadingMagnetic,
			CourseOverGroundMagnetic: st.CourseOverGroundMagnetic,
			SpeedOverGround:          st.SpeedOverGround,
			AirTemperature:           st.AirTemperature,
			RelativeHumidity:         st.RelativeHumidity,
			Anchored:                 st.Anchored,
			AnchoredApparentBearing:  st.AnchoredApparentBearing,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client went away
}
