package boxfield

import (
	"math/rand"

	"github.com/dkotenko/boxfield/internal/config"
	"github.com/dkotenko/boxfield/internal/core"
)

// Field is the static obstacle set for one session. It is generated once
// per Reset from the seeded RNG and never mutated afterwards; obstacles are
// render-only and do not constrain movement.
type Field struct {
	obstacles []core.Rect
}

// GenerateField places cfg.Count obstacles at random positions inside
// bounds. Placements overlapping the avoid rectangle (the player spawn) are
// retried so the box never starts underneath an obstacle; obstacles may
// overlap each other.
func GenerateField(rng *rand.Rand, cfg config.ObstacleConfig, bounds core.Bounds, avoid core.Rect) Field {
	f := Field{obstacles: make([]core.Rect, 0, cfg.Count)}

	worldW := int(bounds.W)
	worldH := int(bounds.H)

	for i := 0; i < cfg.Count; i++ {
		for attempt := 0; attempt < 20; attempt++ {
			w := cfg.MinWidth
			if cfg.MaxWidth > cfg.MinWidth {
				w = cfg.MinWidth + rng.Intn(cfg.MaxWidth-cfg.MinWidth+1)
			}
			h := cfg.MinHeight
			if cfg.MaxHeight > cfg.MinHeight {
				h = cfg.MinHeight + rng.Intn(cfg.MaxHeight-cfg.MinHeight+1)
			}
			if w > worldW || h > worldH {
				continue
			}

			r := core.NewRect(rng.Intn(worldW-w+1), rng.Intn(worldH-h+1), w, h)
			if r.Intersects(avoid) {
				continue
			}

			f.obstacles = append(f.obstacles, r)
			break
		}
	}

	return f
}

// Obstacles returns the obstacle rectangles in world cells.
func (f Field) Obstacles() []core.Rect {
	return f.obstacles
}

// Count returns the number of placed obstacles. It can be lower than the
// configured count when the world is too crowded to place one clear of the
// spawn within the retry budget.
func (f Field) Count() int {
	return len(f.obstacles)
}
