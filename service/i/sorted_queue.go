package i

import "context"

// SortedQueue keeps members ordered by score, lowest first.
type SortedQueue interface {
	// Enqueue adds or re-scores a member.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// Tops returns up to amount members with the lowest scores without removing them.
	Tops(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Count returns the number of members under queueKey.
	Count(ctx context.Context, queueKey string) int64
}
