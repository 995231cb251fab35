package trips

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"roamio/db"
	"roamio/globals"
	"roamio/middleware"
	"roamio/models"
	"roamio/planner"
	"roamio/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type Handler struct {
	Engine *planner.Engine
}

func NewHandler(engine *planner.Engine) *Handler {
	return &Handler{Engine: engine}
}

func requestingUserID(r *http.Request) string {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}

// POST /api/itineraries/compose
func (h *Handler) Compose(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.ItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	req.Premium = middleware.IsPremium(r.Context())

	itinerary, err := h.Engine.ComposeItinerary(r.Context(), req)
	if err != nil {
		var verr *planner.ValidationError
		if errors.As(err, &verr) {
			status := http.StatusBadRequest
			if verr.Cap > 0 {
				status = http.StatusForbidden
			}
			utils.RespondWithJSON(w, status, utils.M{
				"error":     verr.Error(),
				"reason":    verr.Reason,
				"cap":       verr.Cap,
				"requested": verr.Requested,
			})
			return
		}
		log.Printf("trips: compose failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error composing itinerary")
		return
	}

	itinerary.UserID = requestingUserID(r)
	utils.RespondWithJSON(w, http.StatusOK, itinerary)
}

// POST /api/itineraries/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var itinerary models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&itinerary); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := requestingUserID(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itinerary.UserID = userID
	itinerary.ItineraryID = utils.GenerateRandomString(13)
	itinerary.Status = "Confirmed"
	itinerary.Deleted = false
	itinerary.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.SchedulesCollection.InsertOne(ctx, itinerary); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, itinerary)
}

// GET /api/itineraries/:id
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}

	var itinerary models.Itinerary
	if err := db.SchedulesCollection.FindOne(ctx, filter).Decode(&itinerary); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, itinerary)
}

// GET /api/itineraries
func (h *Handler) GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := requestingUserID(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "deleted": bson.M{"$ne": true}}
	itineraries, err := utils.FindAndDecode[models.Itinerary](ctx, db.SchedulesCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	for i := range itineraries {
		if itineraries[i].Days == nil {
			itineraries[i].Days = []models.DaySchedule{}
		}
	}

	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}

	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

// DELETE /api/itineraries/:id
func (h *Handler) DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := requestingUserID(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itineraryID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var itinerary models.Itinerary
	if err := db.SchedulesCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID}).Decode(&itinerary); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	if itinerary.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	update := bson.M{"$set": bson.M{"deleted": true}}
	if _, err := db.SchedulesCollection.UpdateOne(ctx, bson.M{"itineraryid": itineraryID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Itinerary deleted successfully"})
}
