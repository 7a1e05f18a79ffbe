package handlers

import (
	"net/http"

	"github.com/Dosada05/volleyball-league/services"
)

type DivisionHandler struct {
	divisionService services.DivisionService
}

func NewDivisionHandler(ds services.DivisionService) *DivisionHandler {
	return &DivisionHandler{divisionService: ds}
}

// ListDivisions godoc
// @Summary List the divisions of a season
// @Tags divisions
// @Produce json
// @Param seasonID path int true "Season ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /seasons/{seasonID}/divisions [get]
func (h *DivisionHandler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	seasonID, err := getIDFromURL(r, "seasonID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	divisions, err := h.divisionService.ListDivisions(r.Context(), seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"divisions": divisions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
