package i

import (
	"time"
)

// Tokenizer issues and checks the bearer tokens guarding the planning API.
type Tokenizer interface {
	// Issue creates a token naming subject that expires after ttl.
	Issue(subject string, ttl time.Duration) (string, error)

	// Decode validates a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
