package roundhandlers

import (
	"net/http"

	roundservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/application"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/web"
)

// RecordShotsRequest is the ordered shot list for one hole.
type RecordShotsRequest struct {
	Shots []roundservice.ShotInput `json:"shots"`
}

func (h *RoundHandlers) HandleRecordHole(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RoundHandlers.HandleRecordHole")
	defer span.End()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	roundID, ok := pathUUID(w, r, "roundID")
	if !ok {
		return
	}
	var req roundservice.HoleRequest
	if err := web.Decode(r, &req); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "malformed request body"})
		return
	}

	hole, err := h.service.RecordHole(ctx, userID, roundID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	web.JSON(w, http.StatusOK, hole)
}

func (h *RoundHandlers) HandleRecordShots(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RoundHandlers.HandleRecordShots")
	defer span.End()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	holeID, ok := pathUUID(w, r, "holeID")
	if !ok {
		return
	}
	var req RecordShotsRequest
	if err := web.Decode(r, &req); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "malformed request body"})
		return
	}

	hole, err := h.service.RecordShots(ctx, userID, holeID, req.Shots)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	web.JSON(w, http.StatusOK, hole)
}

func (h *RoundHandlers) HandleDeleteHole(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RoundHandlers.HandleDeleteHole")
	defer span.End()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	holeID, ok := pathUUID(w, r, "holeID")
	if !ok {
		return
	}

	deletion, err := h.service.DeleteHole(ctx, userID, holeID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	web.JSON(w, http.StatusOK, deletion)
}
