package roundhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	roundservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/application"
	roundtime "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/time_utils"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/web"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// RoundHandlers serves the round, hole and shot HTTP API.
type RoundHandlers struct {
	service  roundservice.Service
	logger   *slog.Logger
	tracer   trace.Tracer
	playedAt *roundtime.PlayedAtParser
}

func NewRoundHandlers(service roundservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("roundhandlers")
	}
	return &RoundHandlers{
		service:  service,
		logger:   logger,
		tracer:   tracer,
		playedAt: roundtime.NewPlayedAtParser(roundtime.RealClock{}),
	}
}

// Routes mounts the handlers on r. The caller is expected to have applied
// web.AuthMiddleware.
func Routes(r chi.Router, h Handlers) {
	r.Route("/rounds", func(r chi.Router) {
		r.Get("/", h.HandleListRounds)
		r.Post("/", h.HandleCreateRound)
		r.Post("/import", h.HandleImportScorecard)
		r.Get("/{roundID}", h.HandleGetRound)
		r.Delete("/{roundID}", h.HandleDeleteRound)
		r.Put("/{roundID}/holes", h.HandleRecordHole)
	})
	r.Route("/holes/{holeID}", func(r chi.Router) {
		r.Put("/shots", h.HandleRecordShots)
		r.Delete("/", h.HandleDeleteHole)
	})
}

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, roundservice.ErrRoundNotFound), errors.Is(err, roundservice.ErrHoleNotFound):
		return http.StatusNotFound
	case errors.Is(err, roundservice.ErrInvalidRound),
		errors.Is(err, roundservice.ErrInvalidHole),
		errors.Is(err, roundservice.ErrInvalidShot),
		errors.Is(err, roundservice.ErrHoleOutOfRange),
		errors.Is(err, roundservice.ErrInvalidScorecard):
		return http.StatusBadRequest
	case errors.Is(err, roundservice.ErrScorecardUnreadable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *RoundHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	web.Error(w, r, h.logger, statusFor(err), err)
}

func (h *RoundHandlers) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := web.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
	return id, ok
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
