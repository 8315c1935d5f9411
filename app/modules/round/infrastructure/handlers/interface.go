package roundhandlers

import "net/http"

type Handlers interface {
	HandleListRounds(w http.ResponseWriter, r *http.Request)
	HandleCreateRound(w http.ResponseWriter, r *http.Request)
	HandleGetRound(w http.ResponseWriter, r *http.Request)
	HandleDeleteRound(w http.ResponseWriter, r *http.Request)

	HandleRecordHole(w http.ResponseWriter, r *http.Request)
	HandleRecordShots(w http.ResponseWriter, r *http.Request)
	HandleDeleteHole(w http.ResponseWriter, r *http.Request)

	HandleImportScorecard(w http.ResponseWriter, r *http.Request)
}
