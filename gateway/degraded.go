package gateway

import (
	"context"

	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// Degraded is the no-op strategy selected when backend configuration is
// absent or malformed. Reads return empty results and never error, so
// pages can render their fallback content without special-casing
// configuration state. Writes fail with ErrUnconfigured: a visitor's
// submission must never look persisted when it was dropped.
type Degraded struct {
	logger interfaces.Logger
}

var _ Service = (*Degraded)(nil)

// NewDegraded constructs the no-op gateway.
func NewDegraded(logger interfaces.Logger) *Degraded {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Degraded{logger: logger}
}

func (d *Degraded) Mode() Mode { return ModeDegraded }

func (d *Degraded) FetchCollection(_ context.Context, name string, _ Query) ([]Record, error) {
	d.logger.Debug("gateway.degraded.fetch", "collection", name)
	return nil, nil
}

func (d *Degraded) InsertRecord(_ context.Context, name string, _ map[string]any) (*Record, error) {
	d.logger.Debug("gateway.degraded.insert", "collection", name)
	return nil, ErrUnconfigured
}

func (d *Degraded) UpdateRecord(_ context.Context, name, _ string, _ map[string]any) error {
	d.logger.Debug("gateway.degraded.update", "collection", name)
	return ErrUnconfigured
}

func (d *Degraded) DeleteRecord(_ context.Context, name, _ string) error {
	d.logger.Debug("gateway.degraded.delete", "collection", name)
	return ErrUnconfigured
}

func (d *Degraded) ResolveOne(_ context.Context, name, _ string, _ any) (*Record, error) {
	d.logger.Debug("gateway.degraded.resolve", "collection", name)
	return nil, ErrNotFound
}
