// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Store is the sole authority over one session's cart. It keeps the line
// items in memory and commits the full snapshot to storage before any
// mutation reports success, so a confirmed add survives an abrupt reload.
//
// A mutation that fails to persist leaves the in-memory state at the
// pre-call value; there are no partial commits.
type Store struct {
	storage Storage
	key     string
	items   []LineItem
}

// Open rehydrates a session's cart from its storage slot. An empty slot
// yields an empty cart. A slot whose contents no longer parse is discarded
// rather than trusted: the slot is deleted and the cart starts empty.
func Open(ctx context.Context, storage Storage, sessionID string) (*Store, error) {
	store := &Store{
		storage: storage,
		key:     SessionKey(sessionID),
	}

	data, err := storage.Load(ctx, store.key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return store, nil
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		// Unreadable snapshot: clear the slot, never attempt partial repair
		if delErr := storage.Delete(ctx, store.key); delErr != nil {
			return nil, fmt.Errorf("failed to clear unreadable cart snapshot: %w", delErr)
		}
		return store, nil
	}

	store.items = snapshot.Items
	return store, nil
}

// AddItem adds quantity units of a product to the cart. When a line for the
// product already exists the quantities merge into it; a new line is
// appended otherwise. The mutation is rejected without side effects when
// the quantity is not positive or the merged quantity would exceed the
// product's known stock.
func (s *Store) AddItem(ctx context.Context, product catalog.Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	items := s.cloneItems()
	idx := findLine(items, product.ID)

	if idx >= 0 {
		newQuantity := items[idx].Quantity + quantity
		if product.Stock != nil && newQuantity > *product.Stock {
			return &StockExceededError{ProductID: product.ID, Available: *product.Stock}
		}
		// Refresh the stored product data in case pricing changed
		items[idx].Product = product
		items[idx].Quantity = newQuantity
	} else {
		if product.Stock != nil && quantity > *product.Stock {
			return &StockExceededError{ProductID: product.ID, Available: *product.Stock}
		}
		items = append(items, LineItem{Product: product, Quantity: quantity})
	}

	return s.commit(ctx, items)
}

// UpdateQuantity sets a line's quantity to exactly the given value (absolute
// set, not a delta). It rejects non-positive quantities, quantities above
// the line's known stock, and product ids with no line in the cart.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	idx := findLine(s.items, productID)
	if idx < 0 {
		return ErrItemNotFound
	}

	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	stock := s.items[idx].Product.Stock
	if stock != nil && quantity > *stock {
		return &StockExceededError{ProductID: productID, Available: *stock}
	}

	items := s.cloneItems()
	items[idx].Quantity = quantity

	return s.commit(ctx, items)
}

// RemoveItem removes the line matching productID. Removing an id that is
// not in the cart is a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	idx := findLine(s.items, productID)
	if idx < 0 {
		return nil
	}

	items := s.cloneItems()
	items = append(items[:idx], items[idx+1:]...)

	return s.commit(ctx, items)
}

// RemoveAll empties the cart unconditionally and persists the empty state.
// Used for the explicit clear action and as the terminal step of a
// confirmed checkout.
func (s *Store) RemoveAll(ctx context.Context) error {
	return s.commit(ctx, nil)
}

// Items returns a copy of the current line items in insertion order
func (s *Store) Items() []LineItem {
	return s.cloneItems()
}

// ItemCount returns the sum of quantities across all lines
func (s *Store) ItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines
func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

// Corrupted scans the snapshot for any line missing its product reference.
// Callers finding corruption clear the whole cart rather than repairing it.
func (s *Store) Corrupted() bool {
	for _, item := range s.items {
		if item.Corrupted() {
			return true
		}
	}
	return false
}

// commit persists the candidate snapshot and only then adopts it in memory
func (s *Store) commit(ctx context.Context, items []LineItem) error {
	snapshot := Snapshot{Items: items}
	if snapshot.Items == nil {
		snapshot.Items = []LineItem{}
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize cart snapshot: %w", err)
	}

	if err := s.storage.Save(ctx, s.key, data); err != nil {
		return err
	}

	s.items = snapshot.Items
	return nil
}

func (s *Store) cloneItems() []LineItem {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

func findLine(items []LineItem, productID string) int {
	for i := range items {
		if items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}
