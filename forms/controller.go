// Package forms drives the contact form lifecycle: field state, validation,
// single-flight submission, and the timed return to the idle state that
// clears success and failure banners.
package forms

import (
	"context"
	"errors"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	goerrors "github.com/goliatone/go-errors"

	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// State is the submission lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrSubmissionInFlight rejects a Submit while one is already running.
	ErrSubmissionInFlight = errors.New("forms: submission already in flight")
	// ErrControllerClosed rejects operations after Close.
	ErrControllerClosed = errors.New("forms: controller closed")
)

const formValidationCode = "FORM_VALIDATION_FAILED"

// revertAfter is how long a success or failure banner stays up before the
// form returns to idle.
const defaultRevertAfter = 5 * time.Second

// Submission holds the contact form fields.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Validate enforces the form's required fields and email shape.
func (s Submission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Email, validation.Required, is.Email),
		validation.Field(&s.Message, validation.Required),
	)
}

// Sink receives a validated submission. Implementations talk to the
// backend; the controller only cares whether the call errored.
type Sink func(ctx context.Context, submission Submission) error

// Controller runs the form state machine. Safe for concurrent use.
type Controller struct {
	mu          sync.Mutex
	state       State
	fields      Submission
	sink        Sink
	revertAfter time.Duration
	timer       *time.Timer
	generation  int
	closed      bool
	logger      interfaces.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger injects the controller logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRevertAfter overrides the banner revert delay, for tests.
func WithRevertAfter(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.revertAfter = d
		}
	}
}

// New constructs a Controller delivering submissions to sink.
func New(sink Sink, opts ...Option) *Controller {
	c := &Controller{
		sink:        sink,
		revertAfter: defaultRevertAfter,
		logger:      logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Fields returns the current field values.
func (c *Controller) Fields() Submission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// SetFields replaces the form fields. Edits while a submission is in
// flight are accepted; the in-flight call uses the values it captured.
func (c *Controller) SetFields(fields Submission) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = fields
}

// Submit validates the current fields and delivers them to the sink.
// Invalid fields fail fast without a state change. While a submission is
// running, further calls return ErrSubmissionInFlight. On success the
// fields reset and the state shows Succeeded; on failure the fields are
// preserved for correction and the state shows Failed. Either way the
// state returns to Idle after the revert delay.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrControllerClosed
	}
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}

	fields := c.fields
	if err := fields.Validate(); err != nil {
		c.mu.Unlock()
		return goerrors.Wrap(err, goerrors.CategoryValidation, "contact form validation failed").
			WithTextCode(formValidationCode)
	}

	c.cancelRevertLocked()
	c.state = StateSubmitting
	c.mu.Unlock()

	err := c.sink(ctx, fields)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrControllerClosed
	}

	if err != nil {
		c.state = StateFailed
		c.logger.Warn("form.submit_failed", "error", err)
	} else {
		c.state = StateSucceeded
		c.fields = Submission{}
		c.logger.Info("form.submitted", "email", fields.Email)
	}
	c.scheduleRevertLocked()
	return err
}

// scheduleRevertLocked arms the banner revert timer. The generation guard
// keeps a stale timer from clobbering the state of a newer submission.
func (c *Controller) scheduleRevertLocked() {
	c.generation++
	generation := c.generation
	c.timer = time.AfterFunc(c.revertAfter, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || c.generation != generation {
			return
		}
		if c.state == StateSucceeded || c.state == StateFailed {
			c.state = StateIdle
		}
		c.timer = nil
	})
}

func (c *Controller) cancelRevertLocked() {
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Close stops the revert timer and rejects further submissions.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancelRevertLocked()
}
