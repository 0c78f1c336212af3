// Package httpapi exposes the quiz session over JSON/HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/abhisek/quickcode/internal/lessons"
	"github.com/abhisek/quickcode/internal/logger"
	"github.com/abhisek/quickcode/internal/progress"
	"github.com/abhisek/quickcode/internal/session"
)

// Session is the subset of *session.Controller the API drives.
type Session interface {
	Start(ctx context.Context) error
	Restart(ctx context.Context) error
	SelectOption(option string) error
	Submit(ctx context.Context) error
	Advance(ctx context.Context) error
	DismissLesson() error
	ShowLesson() error
	State() session.State
	Progress() progress.Record
	Signal() session.Signal
	Summary() session.Summary
}

// Cards supplies lesson cards. *lessons.Service satisfies it.
type Cards interface {
	Card(topic string) lessons.Card
	Prefetch(ctx context.Context, topic string)
}

// Handler serves the session API.
type Handler struct {
	sess  Session
	cards Cards
	log   *logger.Logger
}

// NewHandler creates a Handler. cards may be nil.
func NewHandler(sess Session, cards Cards, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{sess: sess, cards: cards, log: log}
}

// Router builds the chi router with middleware and all routes mounted.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts the API under /api.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.getState)
		r.Get("/lessons/{topic}", h.getLesson)

		r.Route("/session", func(r chi.Router) {
			r.Post("/start", h.intent(func(ctx context.Context, _ *http.Request) error { return h.sess.Start(ctx) }))
			r.Post("/restart", h.intent(func(ctx context.Context, _ *http.Request) error { return h.sess.Restart(ctx) }))
			r.Post("/select", h.intent(h.selectOption))
			r.Post("/submit", h.intent(func(ctx context.Context, _ *http.Request) error { return h.sess.Submit(ctx) }))
			r.Post("/advance", h.intent(func(ctx context.Context, _ *http.Request) error { return h.sess.Advance(ctx) }))
			r.Post("/lesson/dismiss", h.intent(func(context.Context, *http.Request) error { return h.sess.DismissLesson() }))
			r.Post("/lesson/show", h.intent(func(context.Context, *http.Request) error { return h.sess.ShowLesson() }))
		})
	})
}

type selectRequest struct {
	Option string `json:"option"`
}

var errBadRequest = errors.New("bad request")

func (h *Handler) selectOption(_ context.Context, r *http.Request) error {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return errBadRequest
	}
	return h.sess.SelectOption(req.Option)
}

// intent runs fn and answers with the resulting view.
func (h *Handler) intent(fn func(ctx context.Context, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r.Context(), r); err != nil {
			status := statusFor(err)
			if status >= http.StatusInternalServerError {
				h.log.Error("session intent failed", "path", r.URL.Path, "error", err)
			}
			Error(w, status, err.Error())
			return
		}
		JSON(w, http.StatusOK, h.view(r.Context()))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrBusy), errors.Is(err, session.ErrInvalidPhase):
		return http.StatusConflict
	case errors.Is(err, session.ErrNoSelection), errors.Is(err, session.ErrUnknownOption), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.view(r.Context()))
}

func (h *Handler) getLesson(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")
	if h.cards == nil {
		JSON(w, http.StatusOK, lessons.For(topic))
		return
	}
	JSON(w, http.StatusOK, h.cards.Card(topic))
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
