// internal/domain/cart/storage.go
package cart

import "context"

// Storage is the durable slot a cart snapshot lives in: one opaque value per
// key, read once when the store opens and rewritten after every mutation.
// Load returns (nil, nil) when the key holds nothing.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// SessionKey builds the fixed, versioned storage key for a session's cart
func SessionKey(sessionID string) string {
	return "cart:v1:session:" + sessionID
}
