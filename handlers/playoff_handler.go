package handlers

import (
	"net/http"

	"github.com/Dosada05/volleyball-league/services"
)

type PlayoffHandler struct {
	playoffService services.PlayoffService
}

func NewPlayoffHandler(ps services.PlayoffService) *PlayoffHandler {
	return &PlayoffHandler{playoffService: ps}
}

// GetPlayoffs godoc
// @Summary Playoff schedule, sections, bracket and champion of a division
// @Tags playoffs
// @Produce json
// @Param divisionID path int true "Division ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /divisions/{divisionID}/playoffs [get]
func (h *PlayoffHandler) GetPlayoffs(w http.ResponseWriter, r *http.Request) {
	divisionID, err := getIDFromURL(r, "divisionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.playoffService.GetPlayoffView(r.Context(), divisionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"playoffs": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetBracket godoc
// @Summary Renderable bracket of a division
// @Description Returns 204 when no playoff match carries a bracket number.
// @Tags playoffs
// @Produce json
// @Param divisionID path int true "Division ID"
// @Success 200 {object} map[string]interface{}
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /divisions/{divisionID}/playoffs/bracket [get]
func (h *PlayoffHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	divisionID, err := getIDFromURL(r, "divisionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.playoffService.GetPlayoffView(r.Context(), divisionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if view.Bracket == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": view.Bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetSchedule godoc
// @Summary Regular-season schedule and results of a division
// @Tags divisions
// @Produce json
// @Param divisionID path int true "Division ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /divisions/{divisionID}/schedule [get]
func (h *PlayoffHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	divisionID, err := getIDFromURL(r, "divisionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	items, err := h.playoffService.GetSchedule(r.Context(), divisionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedule": items}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PreviewTemplate godoc
// @Summary Preview a seeded winners bracket for N teams
// @Tags playoffs
// @Produce json
// @Param teams query int true "Number of teams (2-64)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /playoffs/template [get]
func (h *PlayoffHandler) PreviewTemplate(w http.ResponseWriter, r *http.Request) {
	teams, err := getQueryInt(r, "teams", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	preview, err := h.playoffService.PreviewTemplate(r.Context(), teams)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"template": preview}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
