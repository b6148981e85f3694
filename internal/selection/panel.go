// Package selection holds the detail-panel state: the currently selected
// record and its lazily loaded child records.
package selection

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Loader fetches child records scoped to a parent id.
type Loader[C any] func(ctx context.Context, parentID string) ([]C, error)

// Panel tracks at most one selected record plus its related child records.
// Each Select issues a monotonically increasing request token; a child load
// that resolves after a newer Select has been issued is discarded, so the
// latest user selection always wins.
type Panel[T any, C any] struct {
	mu       sync.Mutex
	token    uint64
	selected *T
	children []C
	id       func(T) string
	load     Loader[C]
}

// NewPanel creates a Panel. load may be nil for pages without child records.
func NewPanel[T any, C any](id func(T) string, load Loader[C]) *Panel[T, C] {
	return &Panel[T, C]{id: id, load: load}
}

// Select replaces the current selection, discards the previous child list,
// and loads children for the new selection. A load error leaves the child
// list empty; the selection itself always takes effect.
func (p *Panel[T, C]) Select(ctx context.Context, rec T) {
	p.mu.Lock()
	p.token++
	token := p.token
	p.selected = &rec
	p.children = nil
	load := p.load
	p.mu.Unlock()

	if load == nil {
		return
	}

	children, err := load(ctx, p.id(rec))
	if err != nil {
		zap.L().Warn("child record load failed",
			zap.String("parent_id", p.id(rec)), zap.Error(err))
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.token != token {
		// A newer selection superseded this load.
		return
	}
	p.children = children
}

// Clear resets the selection and child list. In-flight loads for the old
// selection are invalidated.
func (p *Panel[T, C]) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token++
	p.selected = nil
	p.children = nil
}

// Selected returns the current selection, if any.
func (p *Panel[T, C]) Selected() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selected == nil {
		var zero T
		return zero, false
	}
	return *p.selected, true
}

// Children returns the child records loaded for the current selection.
func (p *Panel[T, C]) Children() []C {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]C, len(p.children))
	copy(out, p.children)
	return out
}
