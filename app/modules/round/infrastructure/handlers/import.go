package roundhandlers

import (
	"io"
	"net/http"

	roundservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/application"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/vision"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/attr"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/web"
)

// maxUploadSize caps scorecard uploads at 10 MiB.
const maxUploadSize = 10 << 20

// HandleImportScorecard accepts a multipart form with a "file" part plus
// "course_name" and an optional "played_at" (RFC 3339, a date, or
// phrases like "last saturday"). Images go through the
// vision reader; everything else is parsed by extension.
func (h *RoundHandlers) HandleImportScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RoundHandlers.HandleImportScorecard")
	defer span.End()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "expected a multipart form no larger than 10MB"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "missing file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "could not read file"})
		return
	}

	playedAt, err := h.playedAt.Parse(r.FormValue("played_at"))
	if err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: err.Error()})
		return
	}
	courseName := r.FormValue("course_name")

	var round *roundservice.RoundDetail
	if mediaType := vision.MediaTypeFor(header.Filename); mediaType != "" {
		round, err = h.service.ImportScorecardImage(ctx, userID, roundservice.ImageImportRequest{
			CourseName: courseName,
			Filename:   header.Filename,
			Image:      data,
			MediaType:  mediaType,
			PlayedAt:   playedAt,
		})
	} else {
		round, err = h.service.ImportScorecard(ctx, userID, roundservice.ImportRequest{
			CourseName: courseName,
			Filename:   header.Filename,
			Data:       data,
			PlayedAt:   playedAt,
		})
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "Scorecard upload imported",
		attr.UserID(userID),
		attr.RoundID(round.ID),
		attr.String("filename", header.Filename),
	)
	web.JSON(w, http.StatusCreated, round)
}
