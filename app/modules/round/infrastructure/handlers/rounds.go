package roundhandlers

import (
	"net/http"

	roundservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/application"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/attr"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/web"
)

func (h *RoundHandlers) HandleListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RoundHandlers.HandleListRounds")
	defer span.End()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	rounds, err := h.service.ListRounds(ctx, userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	web.JSON(w, http.StatusOK, rounds)
}

func (h *RoundHandlers) HandleCreateRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RoundHandlers.HandleCreateRound")
	defer span.End()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req roundservice.CreateRoundRequest
	if err := web.Decode(r, &req); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "malformed request body"})
		return
	}

	round, err := h.service.CreateRound(ctx, userID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.InfoContext(ctx, "Round created", attr.UserID(userID), attr.RoundID(round.ID))
	web.JSON(w, http.StatusCreated, round)
}

func (h *RoundHandlers) HandleGetRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RoundHandlers.HandleGetRound")
	defer span.End()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	roundID, ok := pathUUID(w, r, "roundID")
	if !ok {
		return
	}

	round, err := h.service.GetRound(ctx, userID, roundID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	web.JSON(w, http.StatusOK, round)
}

func (h *RoundHandlers) HandleDeleteRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RoundHandlers.HandleDeleteRound")
	defer span.End()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	roundID, ok := pathUUID(w, r, "roundID")
	if !ok {
		return
	}

	if err := h.service.DeleteRound(ctx, userID, roundID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
