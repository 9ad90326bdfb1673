package geom

import "sync"

// BoundsPool manages a pool of reusable Bounds objects.
// After warmup, bounding-box churn from shape construction is allocation-free.
//
// Usage:
//
//	pool := NewBoundsPool()
//	b := pool.Get()
//	defer pool.Put(b)
//	// use b...
//
// Shapes pull from [DefaultBoundsPool] on their first Bounds() call and own
// the box exclusively for their lifetime; call the shape's Release method to
// hand it back.
type BoundsPool struct {
	pool sync.Pool
}

// NewBoundsPool creates a new bounds pool.
func NewBoundsPool() *BoundsPool {
	return &BoundsPool{
		pool: sync.Pool{
			New: func() any {
				return NewBounds()
			},
		},
	}
}

// Get retrieves a box from the pool.
// The box is reset to empty and ready for use.
func (p *BoundsPool) Get() *Bounds {
	b := p.pool.Get().(*Bounds)
	b.Reset()
	return b
}

// Put returns a box to the pool for reuse.
// The caller must not retain the box after Put.
func (p *BoundsPool) Put(b *Bounds) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

// Warmup pre-allocates boxes to avoid allocation during critical paths.
// Call this during initialization if allocation-free operation is required.
func (p *BoundsPool) Warmup(count int) {
	boxes := make([]*Bounds, count)
	for i := 0; i < count; i++ {
		boxes[i] = p.Get()
	}
	for i := 0; i < count; i++ {
		p.Put(boxes[i])
	}
}

// DefaultBoundsPool is the global pool shapes allocate their bounds from.
// For performance-critical code, consider creating dedicated pools.
var DefaultBoundsPool = NewBoundsPool()
