// Package api HTTP адаптер: принимает параметры расчета или сообщения диалога
// и передает их в service.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cloud-ru/kredit-schedule-go/internal/metrics"
	"github.com/cloud-ru/kredit-schedule-go/internal/service"
	"github.com/cloud-ru/kredit-schedule-go/internal/session"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server обрабатывает HTTP запросы
type Server struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewServer создает HTTP сервер поверх сервиса
func NewServer(svc *service.Service, logger *slog.Logger) *Server {
	return &Server{svc: svc, logger: logger}
}

type scheduleRequest struct {
	Principal         float64  `json:"principal"`
	TermMonths        int      `json:"term_months"`
	AnnualRatePercent *float64 `json:"annual_rate_percent,omitempty"`
}

type messageRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Router возвращает маршруты сервиса
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.instrument)

	router.HandleFunc("/health", s.healthHandler).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/schedules", s.createScheduleHandler).Methods("POST")
	router.HandleFunc("/sessions", s.createSessionHandler).Methods("POST")
	router.HandleFunc("/sessions/{id}/messages", s.postMessageHandler).Methods("POST")
	router.HandleFunc("/sessions/{id}", s.deleteSessionHandler).Methods("DELETE")

	return router
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) createScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error(), Kind: "parse"})
		return
	}

	result, err := s.svc.Calculate(r.Context(), req.Principal, req.TermMonths, req.AnnualRatePercent)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) createSessionHandler(w http.ResponseWriter, r *http.Request) {
	reply, err := s.svc.StartSession(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, reply)
}

func (s *Server) postMessageHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error(), Kind: "parse"})
		return
	}

	reply, err := s.svc.HandleMessage(r.Context(), id, req.Text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, reply)
}

func (s *Server) deleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DiscardSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if kind := service.ErrorKind(err); kind != "" {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: kind})
		return
	}
	if errors.Is(err, session.ErrNotFound) {
		s.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "encode response failed", "path", r.URL.Path, "status", status, "error", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument считает запросы и их длительность по шаблону маршрута
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		s.logger.DebugContext(r.Context(), "http request",
			"method", r.Method, "route", route, "status", rec.status, "duration", time.Since(start))
	})
}
