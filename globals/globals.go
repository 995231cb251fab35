package globals

import "os"

var JwtSecret = func() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("your_secret_key") // Replace with a secure secret key
}()

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

// PremiumRole lifts the free-tier day cap on itinerary composition.
const PremiumRole = "premium"
