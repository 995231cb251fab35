package routes

import (
	"roamio/catalog"
	"roamio/middleware"
	"roamio/ratelim"
	"roamio/trips"
	"roamio/weather"

	"github.com/julienschmidt/httprouter"
)

func AddItineraryRoutes(router *httprouter.Router, h *trips.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/itineraries/compose", rl.Limit(middleware.Authenticate(h.Compose)))
	router.POST("/api/itineraries/confirm", rl.Limit(middleware.Authenticate(h.Confirm)))
	router.GET("/api/itineraries", middleware.Authenticate(h.GetItineraries))
	router.GET("/api/itineraries/:id", middleware.OptionalAuth(h.GetItinerary))
	router.DELETE("/api/itineraries/:id", rl.Limit(middleware.Authenticate(h.DeleteItinerary)))
}

func AddVenueRoutes(router *httprouter.Router, a *catalog.Adapter, rl *ratelim.RateLimiter) {
	router.GET("/api/venues/search", rl.Limit(middleware.OptionalAuth(a.SearchVenues)))
}

func AddWeatherRoutes(router *httprouter.Router, c *weather.Client, rl *ratelim.RateLimiter) {
	router.GET("/api/weather/:city", rl.Limit(c.GetCityWeather))
}
