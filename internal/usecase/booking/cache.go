package booking

import "context"

// AvailabilityCache is what the booking use cases need from the
// availability response cache. *cache.AvailabilityCache satisfies it.
type AvailabilityCache interface {
	Get(ctx context.Context, artistID uint, out any) bool
	Set(ctx context.Context, artistID uint, value any)
	Invalidate(ctx context.Context, artistID uint)
}
