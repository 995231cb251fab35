package weather

import (
	"log"
	"net/http"

	"roamio/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/weather/:city
func (c *Client) GetCityWeather(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	city := ps.ByName("city")

	condition, err := c.Current(r.Context(), city)
	if err != nil {
		log.Printf("weather: falling back to neutral for %q: %v", city, err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"city":      city,
		"condition": condition,
	})
}
