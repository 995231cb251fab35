package catalog

import (
	"context"
	"fmt"
	"log"
	"time"

	"roamio/db"
	"roamio/models"

	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxPoolSize caps the candidate pool per category.
const MaxPoolSize = 50

// Adapter queries the venue catalog, narrowing results to a destination
// through the region hierarchy. Pools are cached in-process.
type Adapter struct {
	pools *cache.Cache
}

func NewAdapter() *Adapter {
	return &Adapter{
		pools: cache.New(10*time.Minute, 15*time.Minute),
	}
}

// FindVenues returns catalog venues for a destination and category.
// Unknown destinations degrade to a substring match on name/address/city.
func (a *Adapter) FindVenues(ctx context.Context, destination, category string, limit int) ([]models.Venue, error) {
	if limit <= 0 || limit > MaxPoolSize {
		limit = MaxPoolSize
	}

	key := fmt.Sprintf("pool:%s:%s:%d", Normalize(destination), category, limit)
	if cached, found := a.pools.Get(key); found {
		return cached.([]models.Venue), nil
	}

	filter := bson.M{"category": category}
	if region, ok := Resolve(destination); ok {
		filter["region_id"] = bson.M{"$in": Descendants(region.ID)}
	} else {
		pattern := primitive.Regex{Pattern: Normalize(destination), Options: "i"}
		filter["$or"] = []bson.M{
			{"name": pattern},
			{"address": pattern},
			{"city": pattern},
		}
	}

	findCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetLimit(int64(limit))
	cursor, err := db.VenuesCollection.Find(findCtx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("venue lookup for %q: %w", destination, err)
	}
	defer cursor.Close(findCtx)

	venues := []models.Venue{}
	for cursor.Next(findCtx) {
		var v models.Venue
		if err := cursor.Decode(&v); err == nil {
			venues = append(venues, v)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("venue cursor for %q: %w", destination, err)
	}

	a.pools.Set(key, venues, cache.DefaultExpiration)
	log.Printf("catalog: %d %s venues for %q", len(venues), category, destination)
	return venues, nil
}
