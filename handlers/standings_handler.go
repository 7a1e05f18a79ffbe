package handlers

import (
	"net/http"

	"github.com/Dosada05/volleyball-league/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(ss services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: ss}
}

// GetDivisionStandings godoc
// @Summary Regular-season standings of a division
// @Tags standings
// @Produce json
// @Param divisionID path int true "Division ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /divisions/{divisionID}/standings [get]
func (h *StandingsHandler) GetDivisionStandings(w http.ResponseWriter, r *http.Request) {
	divisionID, err := getIDFromURL(r, "divisionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.standingsService.GetDivisionStandings(r.Context(), divisionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetSeasonStandings godoc
// @Summary Regular-season standings of every division in a season
// @Tags standings
// @Produce json
// @Param seasonID path int true "Season ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /seasons/{seasonID}/standings [get]
func (h *StandingsHandler) GetSeasonStandings(w http.ResponseWriter, r *http.Request) {
	seasonID, err := getIDFromURL(r, "seasonID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.standingsService.GetSeasonStandings(r.Context(), seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"divisions": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
