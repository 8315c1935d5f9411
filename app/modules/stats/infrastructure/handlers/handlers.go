package statshandlers

import (
	"context"
	"log/slog"
	"net/http"

	statsservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/stats/application"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/attr"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/web"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Handlers serves the read-only stats API.
type Handlers interface {
	HandleSummary(w http.ResponseWriter, r *http.Request)
	HandleFamily(w http.ResponseWriter, r *http.Request)
	HandleChart(w http.ResponseWriter, r *http.Request)
}

type StatsHandlers struct {
	service statsservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewStatsHandlers(service statsservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("statshandlers")
	}
	return &StatsHandlers{service: service, logger: logger, tracer: tracer}
}

// Routes mounts /stats on r. Every route accepts ?round=<id> to report a
// single round instead of per 18 holes.
func Routes(r chi.Router, h Handlers) {
	r.Route("/stats", func(r chi.Router) {
		r.Get("/", h.HandleSummary)
		r.Get("/chart.png", h.HandleChart)
		r.Get("/{family}", h.HandleFamily)
	})
}

type family func(ctx context.Context, svc statsservice.Service, userID uuid.UUID, roundID *uuid.UUID) (any, error)

var families = map[string]family{
	"strokes-gained": func(ctx context.Context, s statsservice.Service, u uuid.UUID, r *uuid.UUID) (any, error) {
		return s.StrokesGained(ctx, u, r)
	},
	"approach": func(ctx context.Context, s statsservice.Service, u uuid.UUID, r *uuid.UUID) (any, error) {
		return s.Approach(ctx, u, r)
	},
	"putting": func(ctx context.Context, s statsservice.Service, u uuid.UUID, r *uuid.UUID) (any, error) {
		return s.Putting(ctx, u, r)
	},
	"short-game": func(ctx context.Context, s statsservice.Service, u uuid.UUID, r *uuid.UUID) (any, error) {
		return s.ShortGame(ctx, u, r)
	},
	"driving": func(ctx context.Context, s statsservice.Service, u uuid.UUID, r *uuid.UUID) (any, error) {
		return s.Driving(ctx, u, r)
	},
	"tiger-five": func(ctx context.Context, s statsservice.Service, u uuid.UUID, r *uuid.UUID) (any, error) {
		return s.TigerFive(ctx, u, r)
	},
	"mental-scorecard": func(ctx context.Context, s statsservice.Service, u uuid.UUID, r *uuid.UUID) (any, error) {
		return s.MentalScorecard(ctx, u, r)
	},
}

func (h *StatsHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "StatsHandlers.HandleSummary")
	defer span.End()

	userID, roundID, ok := h.scope(w, r)
	if !ok {
		return
	}
	summary, err := h.service.Summary(ctx, userID, roundID)
	if err != nil {
		web.Error(w, r, h.logger, http.StatusInternalServerError, err)
		return
	}
	web.JSON(w, http.StatusOK, summary)
}

func (h *StatsHandlers) HandleFamily(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "StatsHandlers.HandleFamily")
	defer span.End()

	name := chi.URLParam(r, "family")
	compute, found := families[name]
	if !found {
		web.JSON(w, http.StatusNotFound, web.ErrorResponse{Error: "unknown stats family " + name})
		return
	}
	userID, roundID, ok := h.scope(w, r)
	if !ok {
		return
	}

	stats, err := compute(ctx, h.service, userID, roundID)
	if err != nil {
		web.Error(w, r, h.logger, http.StatusInternalServerError, err)
		return
	}
	h.logger.DebugContext(ctx, "Stats served", attr.String("family", name), attr.UserID(userID))
	web.JSON(w, http.StatusOK, stats)
}

func (h *StatsHandlers) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "StatsHandlers.HandleChart")
	defer span.End()

	userID, roundID, ok := h.scope(w, r)
	if !ok {
		return
	}
	png, err := h.service.StrokesGainedChart(ctx, userID, roundID)
	if err != nil {
		web.Error(w, r, h.logger, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// scope reads the caller and the optional round query parameter.
func (h *StatsHandlers) scope(w http.ResponseWriter, r *http.Request) (uuid.UUID, *uuid.UUID, bool) {
	userID, ok := web.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return uuid.Nil, nil, false
	}
	raw := r.URL.Query().Get("round")
	if raw == "" {
		return userID, nil, true
	}
	roundID, err := uuid.Parse(raw)
	if err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "invalid round"})
		return uuid.Nil, nil, false
	}
	return userID, &roundID, true
}
