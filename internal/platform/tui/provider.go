package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-popover/internal/geometry"
	"github.com/vovakirdan/tui-popover/internal/measure"
)

// RegionProvider measures named screen regions maintained by the demo. The
// demo updates regions as the user drags the anchor around; measurement
// commands read them from background goroutines, hence the lock.
type RegionProvider struct {
	mu      sync.RWMutex
	regions map[string]geometry.Rect
}

// NewRegionProvider creates an empty provider.
func NewRegionProvider() *RegionProvider {
	return &RegionProvider{
		regions: make(map[string]geometry.Rect),
	}
}

// Update records the current rect for a region, creating it if needed.
func (p *RegionProvider) Update(id string, r geometry.Rect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.regions[id] = r
}

// Remove unregisters a region. Subsequent measurements fail, which the
// coordinator treats as a silent skip.
func (p *RegionProvider) Remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.regions, id)
}

// Measure implements measure.Provider.
func (p *RegionProvider) Measure(_ context.Context, h measure.Handle) (geometry.Rect, error) {
	id, ok := h.(string)
	if !ok {
		return geometry.Rect{}, fmt.Errorf("tui: unsupported handle type %T", h)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	r, ok := p.regions[id]
	if !ok {
		return geometry.Rect{}, fmt.Errorf("tui: unknown region %q", id)
	}
	return r, nil
}

var _ measure.Provider = (*RegionProvider)(nil)
