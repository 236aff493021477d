package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"coffee-storefront/internal/shopify"
)

// fakeRemote keeps the lines of every checkout it handed out. When gate is
// set, CreateCheckout signals on started and blocks until gate is closed.
type fakeRemote struct {
	mu        sync.Mutex
	creates   [][]shopify.LineItemInput
	checkouts map[string][]shopify.LineItemInput
	adds      int
	replaces  int
	discounts []string

	createErr   error
	addErr      error
	replaceErr  error
	discountErr error

	gate    chan struct{}
	started chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{checkouts: make(map[string][]shopify.LineItemInput)}
}

func checkoutID(n int) string {
	return fmt.Sprintf("gid://shopify/Checkout/%d", n)
}

func (f *fakeRemote) CreateCheckout(_ context.Context, items []shopify.LineItemInput) (*shopify.Checkout, error) {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.creates = append(f.creates, items)
	id := checkoutID(len(f.creates))
	f.checkouts[id] = append([]shopify.LineItemInput(nil), items...)
	return &shopify.Checkout{ID: id, WebURL: f.urlFor(id)}, nil
}

func (f *fakeRemote) AddLineItems(_ context.Context, id string, items []shopify.LineItemInput) (*shopify.Checkout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adds++
	if f.addErr != nil {
		return nil, f.addErr
	}
	lines := f.checkouts[id]
	for _, it := range items {
		merged := false
		for i := range lines {
			if lines[i].VariantID == it.VariantID {
				lines[i].Quantity += it.Quantity
				merged = true
				break
			}
		}
		if !merged {
			lines = append(lines, it)
		}
	}
	f.checkouts[id] = lines
	return &shopify.Checkout{ID: id, WebURL: f.urlFor(id)}, nil
}

func (f *fakeRemote) ReplaceLineItems(_ context.Context, id string, items []shopify.LineItemInput) (*shopify.Checkout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replaces++
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	f.checkouts[id] = append([]shopify.LineItemInput(nil), items...)
	return &shopify.Checkout{ID: id, WebURL: f.urlFor(id)}, nil
}

func (f *fakeRemote) ApplyDiscountCode(_ context.Context, id, code string) (*shopify.Checkout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.discountErr != nil {
		return nil, f.discountErr
	}
	f.discounts = append(f.discounts, code)
	return &shopify.Checkout{ID: id, WebURL: f.urlFor(id)}, nil
}

// urlFor mirrors the url CreateCheckout handed out for id.
func (f *fakeRemote) urlFor(id string) string {
	var n int
	if _, err := fmt.Sscanf(id, "gid://shopify/Checkout/%d", &n); err != nil {
		return ""
	}
	return fmt.Sprintf("https://shop.example.com/checkouts/%d", n)
}

func (f *fakeRemote) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.creates)
}

func (f *fakeRemote) replaceCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.replaces
}

// remoteVariants returns variant quantities held by the newest checkout.
func (f *fakeRemote) remoteVariants() map[string]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]int)
	for _, it := range f.checkouts[checkoutID(len(f.creates))] {
		out[it.VariantID] += it.Quantity
	}
	return out
}

// localVariants returns the variant quantities of the coordinator's cart.
func localVariants(c *Coordinator) map[string]int {
	out := make(map[string]int)
	for _, l := range c.Snapshot().Lines {
		out[l.VariantID] += l.Quantity
	}
	return out
}

// failingStore wraps a store and fails the selected operations.
type failingStore struct {
	entryStore
	loadErr error
	setErr  error
}

var errStoreDown = errors.New("store down")

func (s failingStore) Load(ctx context.Context, sessionID string) (map[string]string, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.entryStore.Load(ctx, sessionID)
}

func (s failingStore) Set(ctx context.Context, sessionID, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.entryStore.Set(ctx, sessionID, key, value)
}

// contextStore fails every call made with a cancelled context, like a
// network-backed store would.
type contextStore struct {
	entryStore
}

func (s contextStore) Load(ctx context.Context, sessionID string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.entryStore.Load(ctx, sessionID)
}

func (s contextStore) Set(ctx context.Context, sessionID, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.entryStore.Set(ctx, sessionID, key, value)
}

func (s contextStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.entryStore.Delete(ctx, sessionID, keys...)
}
