package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"coffee-storefront/internal/domain"
	"coffee-storefront/internal/repository/session"
	"coffee-storefront/internal/shopify"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/currency"
)

// SellingPlanAttribute is the checkout line attribute carrying a line's
// subscription plan.
const SellingPlanAttribute = "_selling_plan_id"

const syncFlightKey = "checkout-sync"

type remoteCheckout interface {
	CreateCheckout(ctx context.Context, items []shopify.LineItemInput) (*shopify.Checkout, error)
	AddLineItems(ctx context.Context, checkoutID string, items []shopify.LineItemInput) (*shopify.Checkout, error)
	ReplaceLineItems(ctx context.Context, checkoutID string, items []shopify.LineItemInput) (*shopify.Checkout, error)
	ApplyDiscountCode(ctx context.Context, checkoutID, code string) (*shopify.Checkout, error)
}

type entryStore interface {
	Load(ctx context.Context, sessionID string) (map[string]string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
}

// AddItemInput describes one add-to-cart action. Quantity 0 means 1.
type AddItemInput struct {
	VariantID     string          `json:"variantId"`
	ProductID     string          `json:"productId"`
	Title         string          `json:"title"`
	VariantTitle  string          `json:"variantTitle"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image"`
	Handle        string          `json:"handle"`
	Quantity      int             `json:"quantity"`
	SellingPlanID string          `json:"sellingPlanId"`
}

// Option configures a Coordinator.
type Option func(*Coordinator)

func WithLogger(l *zap.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCurrency sets the currency totals are reported in.
func WithCurrency(u currency.Unit) Option {
	return func(c *Coordinator) { c.currency = u }
}

// Coordinator owns one visitor's cart and keeps a remote checkout session
// reconciled with it. Local state is authoritative; the session store is a
// write-through copy and the remote checkout follows on a best-effort basis.
type Coordinator struct {
	sessionID string
	store     entryStore
	remote    remoteCheckout
	logger    *zap.Logger
	currency  currency.Unit

	syncing singleflight.Group

	mu          sync.Mutex
	lines       []domain.CartLine
	checkoutID  string
	checkoutURL string
	inflight    int
	// pending holds lines added since the last sync that only need to be
	// appended remotely. stale means the remote lines must be replaced with
	// the full local list.
	pending []shopify.LineItemInput
	stale   bool
	// generation changes on Clear so a creation started before the clear
	// cannot attach its checkout to the emptied cart.
	generation uint64
}

func NewCoordinator(sessionID string, store entryStore, remote remoteCheckout, opts ...Option) *Coordinator {
	c := &Coordinator{
		sessionID: sessionID,
		store:     store,
		remote:    remote,
		logger:    zap.NewNop(),
		currency:  currency.USD,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("session_id", sessionID))
	return c
}

// Initialize restores state from the session store. Missing or malformed
// entries leave an empty cart; nothing is reported to the caller.
func (c *Coordinator) Initialize(ctx context.Context) {
	entries, err := c.store.Load(ctx, c.sessionID)
	if err != nil {
		c.logger.Warn("load cart session failed, starting empty", zap.Error(err))
		entries = nil
	}

	lines := decodeLines(entries[session.KeyCartItems], c.logger)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = lines
	c.checkoutID = strings.TrimSpace(entries[session.KeyCheckoutID])
	c.checkoutURL = ""
	if c.checkoutID != "" {
		c.checkoutURL = strings.TrimSpace(entries[session.KeyCheckoutURL])
	}
	// Edits made before the reload may not have reached the checkout.
	c.pending = nil
	c.stale = c.checkoutID != ""
}

// decodeLines parses the stored line list, dropping invalid lines and
// merging repeated variants.
func decodeLines(raw string, logger *zap.Logger) []domain.CartLine {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var stored []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warn("stored cart is malformed, starting empty", zap.Error(err))
		return nil
	}
	var out []domain.CartLine
	index := make(map[string]int, len(stored))
	for _, l := range stored {
		l.VariantID = strings.TrimSpace(l.VariantID)
		if l.VariantID == "" || l.Quantity < 1 || l.Price.IsNegative() {
			continue
		}
		if i, ok := index[l.VariantID]; ok {
			out[i].Quantity += l.Quantity
			continue
		}
		index[l.VariantID] = len(out)
		out = append(out, l)
	}
	return out
}

// AddItem adds the variant locally, persists, then reconciles the remote
// checkout. The returned state includes the new line even when the remote
// step fails; the error is returned alongside it.
func (c *Coordinator) AddItem(ctx context.Context, in AddItemInput) (domain.CartState, error) {
	in.VariantID = strings.TrimSpace(in.VariantID)
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	switch {
	case in.VariantID == "":
		return c.Snapshot(), fmt.Errorf("%w: variant id required", domain.ErrInvalidInput)
	case in.Quantity < 1:
		return c.Snapshot(), fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	case in.Price.IsNegative():
		return c.Snapshot(), fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	// Remote calls outlive the request that triggered them.
	ctx = context.WithoutCancel(ctx)

	c.mu.Lock()
	c.mergeLocked(in)
	c.persistLinesLocked(ctx)
	gen := c.generation
	c.inflight++
	c.mu.Unlock()

	err := c.reconcile(ctx, gen)

	c.mu.Lock()
	c.inflight--
	c.mu.Unlock()
	return c.Snapshot(), err
}

func (c *Coordinator) mergeLocked(in AddItemInput) {
	c.queueLocked(lineItemInput(in.VariantID, in.Quantity, in.SellingPlanID))
	for i := range c.lines {
		if c.lines[i].VariantID != in.VariantID {
			continue
		}
		c.lines[i].Quantity += in.Quantity
		if in.SellingPlanID != "" && in.SellingPlanID != c.lines[i].SellingPlanID {
			c.lines[i].SellingPlanID = in.SellingPlanID
			// The remote line carries the old plan attribute.
			c.stale = true
		}
		return
	}
	c.lines = append(c.lines, domain.CartLine{
		VariantID:     in.VariantID,
		ProductID:     in.ProductID,
		Title:         in.Title,
		VariantTitle:  in.VariantTitle,
		Price:         in.Price,
		Quantity:      in.Quantity,
		Image:         in.Image,
		Handle:        in.Handle,
		SellingPlanID: in.SellingPlanID,
	})
}

// queueLocked records an added quantity that has not reached the remote
// checkout yet, merging by variant.
func (c *Coordinator) queueLocked(item shopify.LineItemInput) {
	for i := range c.pending {
		if c.pending[i].VariantID == item.VariantID {
			c.pending[i].Quantity += item.Quantity
			return
		}
	}
	c.pending = append(c.pending, item)
}

func lineItemInput(variantID string, quantity int, sellingPlanID string) shopify.LineItemInput {
	item := shopify.LineItemInput{VariantID: variantID, Quantity: quantity}
	if sellingPlanID != "" {
		item.CustomAttributes = []shopify.Attribute{{Key: SellingPlanAttribute, Value: sellingPlanID}}
	}
	return item
}

func lineItemInputs(lines []domain.CartLine) []shopify.LineItemInput {
	items := make([]shopify.LineItemInput, 0, len(lines))
	for _, l := range lines {
		items = append(items, lineItemInput(l.VariantID, l.Quantity, l.SellingPlanID))
	}
	return items
}

// needsSyncLocked reports whether the remote checkout lags the local lines.
// An empty cart is never pushed; the next add or handoff carries the edit.
func (c *Coordinator) needsSyncLocked() bool {
	if len(c.lines) == 0 {
		return false
	}
	return c.checkoutID == "" || c.stale || len(c.pending) > 0
}

// reconcile brings the remote checkout in line with the local cart of
// generation gen. One sync runs per coordinator at a time; callers arriving
// during it wait for it and start another round if their change was not
// covered. Flights are keyed by generation so a Clear starts a fresh one.
func (c *Coordinator) reconcile(ctx context.Context, gen uint64) error {
	key := fmt.Sprintf("%s/%d", syncFlightKey, gen)
	for {
		_, err, _ := c.syncing.Do(key, func() (interface{}, error) {
			return nil, c.drain(ctx, gen)
		})
		if err != nil {
			return err
		}
		c.mu.Lock()
		more := c.generation == gen && c.needsSyncLocked()
		c.mu.Unlock()
		if !more {
			return nil
		}
	}
}

type syncOp int

const (
	opCreate syncOp = iota
	opReplace
	opAdd
)

func (o syncOp) String() string {
	switch o {
	case opCreate:
		return "create checkout"
	case opReplace:
		return "replace line items"
	default:
		return "add line items"
	}
}

type syncStep struct {
	op         syncOp
	checkoutID string
	items      []shopify.LineItemInput
}

// takeStepLocked picks the next remote call and marks its work as taken.
// Changes made while the call runs accumulate for the following step.
func (c *Coordinator) takeStepLocked() syncStep {
	switch {
	case c.checkoutID == "":
		c.pending, c.stale = nil, false
		return syncStep{op: opCreate, items: lineItemInputs(c.lines)}
	case c.stale:
		c.pending, c.stale = nil, false
		return syncStep{op: opReplace, checkoutID: c.checkoutID, items: lineItemInputs(c.lines)}
	default:
		items := c.pending
		c.pending = nil
		return syncStep{op: opAdd, checkoutID: c.checkoutID, items: items}
	}
}

func (c *Coordinator) run(ctx context.Context, step syncStep) (*shopify.Checkout, error) {
	switch step.op {
	case opCreate:
		return c.remote.CreateCheckout(ctx, step.items)
	case opReplace:
		return c.remote.ReplaceLineItems(ctx, step.checkoutID, step.items)
	default:
		return c.remote.AddLineItems(ctx, step.checkoutID, step.items)
	}
}

// drain runs remote steps until the checkout matches the local lines or a
// step fails.
func (c *Coordinator) drain(ctx context.Context, gen uint64) error {
	for {
		c.mu.Lock()
		if c.generation != gen || !c.needsSyncLocked() {
			c.mu.Unlock()
			return nil
		}
		step := c.takeStepLocked()
		c.mu.Unlock()

		co, err := c.run(ctx, step)
		if err == nil && co == nil {
			err = fmt.Errorf("%w: no checkout returned", shopify.ErrMalformedResponse)
		}
		if err == nil {
			c.adoptCheckout(ctx, gen, co)
			continue
		}
		if c.dropGoneCheckout(ctx, gen, step.checkoutID, err) {
			continue
		}

		c.mu.Lock()
		if c.generation == gen {
			// The call may have half-applied; resend everything next time.
			c.stale = true
		}
		c.mu.Unlock()
		c.logger.Warn(step.op.String()+" failed",
			zap.String("checkout_id", step.checkoutID),
			zap.Int("lines", len(step.items)),
			zap.Error(err))
		return fmt.Errorf("%s: %w", step.op, err)
	}
}

// dropGoneCheckout forgets checkoutID when err says it was completed or has
// expired, so the next step opens a new checkout from the local lines.
func (c *Coordinator) dropGoneCheckout(ctx context.Context, gen uint64, checkoutID string, err error) bool {
	if checkoutID == "" || !shopify.CheckoutGone(err) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen || c.checkoutID != checkoutID {
		return true
	}
	c.logger.Info("checkout no longer usable, opening a new one", zap.String("checkout_id", checkoutID), zap.Error(err))
	c.checkoutID, c.checkoutURL = "", ""
	c.pending, c.stale = nil, false
	if err := c.store.Delete(ctx, c.sessionID, session.KeyCheckoutID, session.KeyCheckoutURL); err != nil {
		c.logger.Warn("delete checkout from session failed", zap.Error(err))
	}
	return true
}

// adoptCheckout records the remote checkout id and url unless the cart was
// cleared since gen.
func (c *Coordinator) adoptCheckout(ctx context.Context, gen uint64, co *shopify.Checkout) {
	if co == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		c.logger.Info("abandoning checkout created before clear", zap.String("checkout_id", co.ID))
		return
	}
	if c.checkoutID != co.ID {
		c.logger.Info("checkout created", zap.String("checkout_id", co.ID))
		c.checkoutID = co.ID
		c.persistLocked(ctx, session.KeyCheckoutID, co.ID)
	}
	if co.WebURL != "" && c.checkoutURL != co.WebURL {
		c.checkoutURL = co.WebURL
		c.persistLocked(ctx, session.KeyCheckoutURL, co.WebURL)
	}
}

// RemoveItem drops the line for variantID. Removing an absent variant is a
// no-op.
func (c *Coordinator) RemoveItem(ctx context.Context, variantID string) domain.CartState {
	ctx = context.WithoutCancel(ctx)
	c.mu.Lock()
	if c.removeLocked(strings.TrimSpace(variantID)) {
		c.persistLinesLocked(ctx)
	}
	c.mu.Unlock()
	return c.Snapshot()
}

func (c *Coordinator) removeLocked(variantID string) bool {
	for i := range c.lines {
		if c.lines[i].VariantID == variantID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.stale = true
			return true
		}
	}
	return false
}

// SetQuantity overwrites a line's quantity; quantity <= 0 removes the line.
func (c *Coordinator) SetQuantity(ctx context.Context, variantID string, quantity int) domain.CartState {
	variantID = strings.TrimSpace(variantID)
	if quantity <= 0 {
		return c.RemoveItem(ctx, variantID)
	}
	ctx = context.WithoutCancel(ctx)
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].VariantID == variantID {
			if c.lines[i].Quantity != quantity {
				c.lines[i].Quantity = quantity
				c.stale = true
				c.persistLinesLocked(ctx)
			}
			break
		}
	}
	c.mu.Unlock()
	return c.Snapshot()
}

// Clear empties the cart and forgets the remote checkout. The remote session
// itself is left to expire on the platform.
func (c *Coordinator) Clear(ctx context.Context) domain.CartState {
	ctx = context.WithoutCancel(ctx)
	c.mu.Lock()
	c.lines = nil
	c.checkoutID = ""
	c.checkoutURL = ""
	c.pending, c.stale = nil, false
	c.generation++
	if err := c.store.Delete(ctx, c.sessionID, session.KeyCartItems, session.KeyCheckoutID, session.KeyCheckoutURL); err != nil {
		c.logger.Warn("delete cart session failed", zap.Error(err))
	}
	c.mu.Unlock()
	return c.Snapshot()
}

// TotalItemCount is the sum of all line quantities.
func (c *Coordinator) TotalItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return itemCount(c.lines)
}

// TotalPrice is the sum of price*quantity over all lines, without shipping
// or tax.
func (c *Coordinator) TotalPrice() domain.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Money{Amount: priceTotal(c.lines), Currency: c.currency}
}

func itemCount(lines []domain.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func priceTotal(lines []domain.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// BeginCheckout brings the remote checkout up to date with the cart and
// returns its hosted URL. An empty cart, or one that has never synced,
// yields ErrCheckoutUnavailable. A failed sync is returned rather than
// handing off to a checkout that no longer matches the cart.
func (c *Coordinator) BeginCheckout(ctx context.Context) (string, error) {
	ctx = context.WithoutCancel(ctx)

	c.mu.Lock()
	if len(c.lines) == 0 {
		c.mu.Unlock()
		return "", domain.ErrCheckoutUnavailable
	}
	gen := c.generation
	c.inflight++
	c.mu.Unlock()

	err := c.reconcile(ctx, gen)

	c.mu.Lock()
	c.inflight--
	url, current := c.checkoutURL, c.generation == gen
	c.mu.Unlock()

	switch {
	case err != nil && url == "":
		return "", fmt.Errorf("%w: %w", domain.ErrCheckoutUnavailable, err)
	case err != nil:
		return "", fmt.Errorf("sync checkout: %w", err)
	case url == "" || !current:
		return "", domain.ErrCheckoutUnavailable
	}
	return url, nil
}

// ApplyDiscountCode forwards code to the remote checkout.
func (c *Coordinator) ApplyDiscountCode(ctx context.Context, code string) (domain.CartState, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return c.Snapshot(), fmt.Errorf("%w: discount code required", domain.ErrInvalidInput)
	}
	ctx = context.WithoutCancel(ctx)

	c.mu.Lock()
	checkoutID, gen := c.checkoutID, c.generation
	if checkoutID == "" {
		c.mu.Unlock()
		return c.Snapshot(), domain.ErrCheckoutUnavailable
	}
	c.inflight++
	c.mu.Unlock()

	co, err := c.remote.ApplyDiscountCode(ctx, checkoutID, code)
	if err != nil {
		c.logger.Warn("apply discount code failed", zap.String("checkout_id", checkoutID), zap.Error(err))
		err = fmt.Errorf("apply discount code: %w", err)
	} else {
		c.adoptCheckout(ctx, gen, co)
	}

	c.mu.Lock()
	c.inflight--
	c.mu.Unlock()
	return c.Snapshot(), err
}

// Snapshot returns a copy of the current cart state.
func (c *Coordinator) Snapshot() domain.CartState {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := domain.CartState{
		Lines:          make([]domain.CartLine, len(c.lines)),
		IsSyncing:      c.inflight > 0,
		TotalItemCount: itemCount(c.lines),
		TotalPrice:     domain.Money{Amount: priceTotal(c.lines), Currency: c.currency},
	}
	copy(state.Lines, c.lines)
	if c.checkoutID != "" {
		id := c.checkoutID
		state.CheckoutID = &id
	}
	if c.checkoutURL != "" {
		u := c.checkoutURL
		state.CheckoutURL = &u
	}
	return state
}

func (c *Coordinator) busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

func (c *Coordinator) persistLinesLocked(ctx context.Context) {
	lines := c.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		c.logger.Warn("encode cart failed", zap.Error(err))
		return
	}
	c.persistLocked(ctx, session.KeyCartItems, string(raw))
}

func (c *Coordinator) persistLocked(ctx context.Context, key, value string) {
	if err := c.store.Set(ctx, c.sessionID, key, value); err != nil {
		c.logger.Warn("persist cart session failed", zap.String("key", key), zap.Error(err))
	}
}
