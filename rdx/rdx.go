package rdx

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared Redis client. Redis fronts the Mongo scan log with a
// fast membership set so duplicate door scans are rejected without a
// round-trip to the primary store.
var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

// AddScan records a seat in the scanned set. It reports true when the seat
// was not already present.
func AddScan(ctx context.Context, seat string) (bool, error) {
	added, err := Conn.SAdd(ctx, "scans:seats", seat).Result()
	if err != nil {
		return false, err
	}
	return added == 1, nil
}

// IsScanned reports whether a seat has already been scanned.
func IsScanned(ctx context.Context, seat string) (bool, error) {
	return Conn.SIsMember(ctx, "scans:seats", seat).Result()
}

// RemoveScan drops a seat from the scanned set, used when the Mongo write
// behind a successful SAdd fails.
func RemoveScan(ctx context.Context, seat string) error {
	return Conn.SRem(ctx, "scans:seats", seat).Err()
}
