package controllers

import (
	"net/http"
	"strings"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/dtos"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/gazetteer"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

type AreaController struct{}

func NewAreaController() *AreaController {
	return &AreaController{}
}

// ----------------------------------------------------------------
// GET /api/v1/areas/suggest?q=gach&selected=Kondapur,Madhapur
// ----------------------------------------------------------------
//
// `selected` holds the areas already chosen as tags; they never reappear
// in the suggestions.
func (c *AreaController) SuggestHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	var selected []string
	if raw := r.URL.Query().Get("selected"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				selected = append(selected, s)
			}
		}
	}

	suggestions := gazetteer.Suggest(q, selected)
	utils.RespondWithJSON(w, http.StatusOK, dtos.SuggestAreasResponse{Suggestions: suggestions})
}
