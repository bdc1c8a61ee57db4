// Package carousel drives a cyclic slide index with timed autoplay.
// Manual navigation turns autoplay off for good, matching how visitors
// expect a gallery to behave once they take over.
package carousel

import (
	"sync"
	"time"

	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// DefaultInterval is the autoplay advance period.
const DefaultInterval = 5 * time.Second

// Controller tracks the active slide. Safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	count    int
	index    int
	interval time.Duration
	autoplay bool
	ticker   *time.Ticker
	done     chan struct{}
	closed   bool
	logger   interfaces.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithInterval overrides the autoplay period, for tests.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithoutAutoplay starts the carousel stopped.
func WithoutAutoplay() Option {
	return func(c *Controller) {
		c.autoplay = false
	}
}

// WithLogger records navigation and autoplay changes.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New constructs a Controller over count slides, autoplaying by default.
func New(count int, opts ...Option) *Controller {
	c := &Controller{
		count:    count,
		interval: DefaultInterval,
		autoplay: true,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.autoplay {
		c.startLocked()
	}
	return c
}

// Index returns the active slide position.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// AutoplayEnabled reports whether the carousel advances on its own.
func (c *Controller) AutoplayEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoplay
}

// Next advances one slide, wrapping at the end. Manual navigation stops
// autoplay until SetAutoplay re-enables it.
func (c *Controller) Next() int {
	return c.manualMove(1)
}

// Previous steps one slide back, wrapping at the start.
func (c *Controller) Previous() int {
	return c.manualMove(-1)
}

func (c *Controller) manualMove(delta int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disableAutoplayLocked()
	c.advanceLocked(delta)
	c.logger.Debug("carousel.manual_move", "index", c.index)
	return c.index
}

// GoTo jumps to a specific slide. Out-of-range positions are ignored.
func (c *Controller) GoTo(index int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disableAutoplayLocked()
	if index >= 0 && index < c.count {
		c.index = index
	}
	return c.index
}

// SetCount resizes the slide set, keeping the index in range.
func (c *Controller) SetCount(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if count < 0 {
		count = 0
	}
	c.count = count
	if c.count == 0 {
		c.index = 0
	} else if c.index >= c.count {
		c.index = c.count - 1
	}
}

// SetAutoplay turns timed advancement on or off explicitly.
func (c *Controller) SetAutoplay(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.autoplay == enabled {
		return
	}
	c.logger.Debug("carousel.autoplay", "enabled", enabled)
	if enabled {
		c.autoplay = true
		c.startLocked()
		return
	}
	c.disableAutoplayLocked()
}

// Close stops autoplay and releases the tick goroutine.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.disableAutoplayLocked()
}

func (c *Controller) advanceLocked(delta int) {
	if c.count <= 0 {
		return
	}
	c.index = ((c.index+delta)%c.count + c.count) % c.count
}

func (c *Controller) startLocked() {
	c.autoplay = true
	c.ticker = time.NewTicker(c.interval)
	c.done = make(chan struct{})
	go c.run(c.ticker, c.done)
}

func (c *Controller) run(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.autoplay && !c.closed {
				c.advanceLocked(1)
			}
			c.mu.Unlock()
		}
	}
}

func (c *Controller) disableAutoplayLocked() {
	c.autoplay = false
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
}
