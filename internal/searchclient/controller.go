package searchclient

import (
	"context"
	"sync"
)

// StateKind tags the controller's result state so callers can distinguish
// live data from the bundled fallback.
type StateKind int

const (
	// StateLoading means a fetch is in flight.
	StateLoading StateKind = iota
	// StateLoaded means Listings holds live endpoint results.
	StateLoaded
	// StateErrored means the fetch failed and no fallback is configured.
	StateErrored
	// StateFallback means the fetch failed and Listings holds the bundled
	// sample dataset, not live data.
	StateFallback
)

// State is the controller's current result state.
type State struct {
	Kind     StateKind
	Listings []Listing
	Err      error
}

// IsLoading reports whether a fetch is in flight.
func (s State) IsLoading() bool {
	return s.Kind == StateLoading
}

// Controller owns the canonical search state: the current filter, its query
// string form, and the current result set. All filtering is server-side; the
// controller never re-filters received results.
type Controller struct {
	client   *Client
	onChange func(State)

	mu       sync.Mutex
	filter   FilterState
	state    State
	seq      uint64
	fallback []Listing
}

// NewController creates a controller with the default filter state and the
// bundled fallback dataset. onChange may be nil.
func NewController(client *Client, onChange func(State)) *Controller {
	return &Controller{
		client:   client,
		onChange: onChange,
		filter:   DefaultFilterState(),
		fallback: FallbackListings(),
	}
}

// SetFallback overrides the fallback dataset. Passing nil disables the
// fallback, so failed fetches surface as StateErrored instead.
func (c *Controller) SetFallback(listings []Listing) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallback = listings
}

// Filter returns the current filter state.
func (c *Controller) Filter() FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// State returns the current result state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Query returns the current filter serialized for the address bar.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter.Encode()
}

// Restore parses a shared query string and applies it.
func (c *Controller) Restore(ctx context.Context, rawQuery string) error {
	filter, err := ParseFilterState(rawQuery)
	if err != nil {
		return err
	}
	c.Apply(ctx, filter)
	return nil
}

// Apply sets a new filter and fetches matching listings. Each call is
// stamped with a sequence number; if another Apply supersedes it while the
// fetch is in flight, the stale response is discarded so the displayed
// result set always reflects the latest filter.
func (c *Controller) Apply(ctx context.Context, filter FilterState) {
	c.mu.Lock()
	c.filter = filter
	c.seq++
	seq := c.seq
	c.state = State{Kind: StateLoading, Listings: c.state.Listings}
	c.notifyLocked()
	c.mu.Unlock()

	resp, err := c.client.Search(ctx, filter)
	c.commit(seq, resp, err)
}

// Refresh re-fetches with the current filter.
func (c *Controller) Refresh(ctx context.Context) {
	c.Apply(ctx, c.Filter())
}

// commit installs a fetch outcome unless a newer request has been issued.
// Loading is cleared on every non-stale outcome: success, error, or fallback.
func (c *Controller) commit(seq uint64, resp *SearchResponse, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		// stale response
		return
	}

	switch {
	case err == nil:
		c.state = State{Kind: StateLoaded, Listings: resp.Data}
	case len(c.fallback) > 0:
		c.state = State{Kind: StateFallback, Listings: c.fallback, Err: err}
	default:
		c.state = State{Kind: StateErrored, Err: err}
	}
	c.notifyLocked()
}

func (c *Controller) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.state)
	}
}
