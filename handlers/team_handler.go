package handlers

import (
	"net/http"

	"github.com/Dosada05/volleyball-league/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

// SearchTeams godoc
// @Summary Fuzzy team search within a season
// @Tags teams
// @Produce json
// @Param seasonID path int true "Season ID"
// @Param q query string true "Search text"
// @Param limit query int false "Maximum results (default 10, max 50)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /seasons/{seasonID}/teams/search [get]
func (h *TeamHandler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	seasonID, err := getIDFromURL(r, "seasonID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	limit, err := getQueryInt(r, "limit", services.DefaultSearchLimit)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	results, err := h.teamService.SearchTeams(r.Context(), seasonID, r.URL.Query().Get("q"), limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
