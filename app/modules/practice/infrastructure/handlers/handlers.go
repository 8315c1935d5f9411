package practicehandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	practiceservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/application"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/attr"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/web"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type Handlers interface {
	HandleListSessions(w http.ResponseWriter, r *http.Request)
	HandleCreateSession(w http.ResponseWriter, r *http.Request)
	HandleGetSession(w http.ResponseWriter, r *http.Request)
	HandleUpdateSession(w http.ResponseWriter, r *http.Request)
	HandleDeleteSession(w http.ResponseWriter, r *http.Request)
}

type PracticeHandlers struct {
	service practiceservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewPracticeHandlers(service practiceservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("practicehandlers")
	}
	return &PracticeHandlers{service: service, logger: logger, tracer: tracer}
}

func Routes(r chi.Router, h Handlers) {
	r.Route("/practice", func(r chi.Router) {
		r.Get("/", h.HandleListSessions)
		r.Post("/", h.HandleCreateSession)
		r.Get("/{sessionID}", h.HandleGetSession)
		r.Put("/{sessionID}", h.HandleUpdateSession)
		r.Delete("/{sessionID}", h.HandleDeleteSession)
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, practiceservice.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, practiceservice.ErrInvalidSession):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *PracticeHandlers) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PracticeHandlers.HandleListSessions")
	defer span.End()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	page, err := pageFrom(r)
	if err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: err.Error()})
		return
	}
	sessions, err := h.service.ListSessions(ctx, userID, page)
	if err != nil {
		web.Error(w, r, h.logger, statusFor(err), err)
		return
	}
	web.JSON(w, http.StatusOK, sessions)
}

func (h *PracticeHandlers) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PracticeHandlers.HandleCreateSession")
	defer span.End()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req practiceservice.SessionRequest
	if err := web.Decode(r, &req); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "malformed request body"})
		return
	}
	session, err := h.service.CreateSession(ctx, userID, req)
	if err != nil {
		web.Error(w, r, h.logger, statusFor(err), err)
		return
	}
	h.logger.InfoContext(ctx, "Practice session created", attr.UserID(userID), attr.String("session_id", session.ID.String()))
	web.JSON(w, http.StatusCreated, session)
}

func (h *PracticeHandlers) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PracticeHandlers.HandleGetSession")
	defer span.End()

	userID, sessionID, ok := h.ids(w, r)
	if !ok {
		return
	}
	session, err := h.service.GetSession(ctx, userID, sessionID)
	if err != nil {
		web.Error(w, r, h.logger, statusFor(err), err)
		return
	}
	web.JSON(w, http.StatusOK, session)
}

func (h *PracticeHandlers) HandleUpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PracticeHandlers.HandleUpdateSession")
	defer span.End()

	userID, sessionID, ok := h.ids(w, r)
	if !ok {
		return
	}
	var req practiceservice.SessionRequest
	if err := web.Decode(r, &req); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "malformed request body"})
		return
	}
	session, err := h.service.UpdateSession(ctx, userID, sessionID, req)
	if err != nil {
		web.Error(w, r, h.logger, statusFor(err), err)
		return
	}
	web.JSON(w, http.StatusOK, session)
}

func (h *PracticeHandlers) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PracticeHandlers.HandleDeleteSession")
	defer span.End()

	userID, sessionID, ok := h.ids(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteSession(ctx, userID, sessionID); err != nil {
		web.Error(w, r, h.logger, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PracticeHandlers) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := web.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
	return id, ok
}

func (h *PracticeHandlers) ids(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := h.userID(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "invalid sessionID"})
		return uuid.Nil, uuid.Nil, false
	}
	return userID, sessionID, true
}

// pageFrom reads ?page= (1-based) and ?per_page=.
func pageFrom(r *http.Request) (practiceservice.Page, error) {
	q := r.URL.Query()
	perPage := practiceservice.DefaultPageSize
	if v := q.Get("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return practiceservice.Page{}, errors.New("invalid per_page")
		}
		perPage = n
	}
	pageNum := 1
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return practiceservice.Page{}, errors.New("invalid page")
		}
		pageNum = n
	}
	return practiceservice.Page{Limit: perPage, Offset: (pageNum - 1) * perPage}, nil
}
