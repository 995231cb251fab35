package catalog

import (
	"net/http"
	"strconv"

	"roamio/models"
	"roamio/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/venues/search?destination=...&category=...&limit=...
func (a *Adapter) SearchVenues(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	destination := r.URL.Query().Get("destination")
	if destination == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "destination is required")
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.VenueCategoryAttraction
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 20
	}

	venues, err := a.FindVenues(r.Context(), destination, category, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching venues")
		return
	}

	if tags := utils.SplitTags(r.URL.Query().Get("tags")); len(tags) > 0 {
		venues = filterByTags(venues, tags)
	}

	utils.RespondWithJSON(w, http.StatusOK, venues)
}

func filterByTags(venues []models.Venue, tags []string) []models.Venue {
	out := []models.Venue{}
	for _, v := range venues {
		for _, tag := range v.Tags {
			if utils.Contains(tags, tag) {
				out = append(out, v)
				break
			}
		}
	}
	return out
}
