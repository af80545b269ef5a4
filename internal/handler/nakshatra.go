package handler

import (
	"net/http"

	"github.com/tamilpanchangam/panchangam/internal/nakshatra"
)

// NakshatraListResponse lists the full nakshatra table.
type NakshatraListResponse struct {
	Count      int                    `json:"count"`
	Nakshatras []nakshatra.Resolution `json:"nakshatras"`
}

// HandleResolveNakshatra resolves any supported spelling to its canonical
// English/Tamil pair and RS classification.
// GET /nakshatra/resolve?name=Swathi
func HandleResolveNakshatra() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, "name")
		if !ok {
			return
		}

		res, found := nakshatra.Resolve(name)
		if !found {
			respondError(w, http.StatusNotFound, ErrMsgUnknownNakshatraError)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleListNakshatras lists all 27 nakshatras with their classifications.
// GET /nakshatra
func HandleListNakshatras() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := nakshatra.All()
		out := make([]nakshatra.Resolution, 0, len(entries))
		for _, e := range entries {
			if res, ok := nakshatra.Resolve(e.English); ok {
				out = append(out, res)
			}
		}

		respondJSON(w, http.StatusOK, NakshatraListResponse{Count: len(out), Nakshatras: out})
	}
}
