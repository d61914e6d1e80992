package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/cardace/pkg/events"
)

// PointerKey names the key events raised by a mouse button or touch release.
const PointerKey = "Pointer"

// KeyCollector turns this tick's key edges into key events.
type KeyCollector struct {
	buf     []ebiten.Key
	touches []ebiten.TouchID
}

// Collect pushes a pressed event per key that went down this tick, then a
// released event per key that went up. A left button or touch release
// counts as a release of PointerKey, so touch screens can leave the title.
func (c *KeyCollector) Collect(q *events.Queue[events.KeyEvent]) {
	c.buf = inpututil.AppendJustPressedKeys(c.buf[:0])
	for _, k := range c.buf {
		q.Push(events.KeyEvent{Key: k.String(), State: events.KeyPressed})
	}
	c.buf = inpututil.AppendJustReleasedKeys(c.buf[:0])
	for _, k := range c.buf {
		q.Push(events.KeyEvent{Key: k.String(), State: events.KeyReleased})
	}

	c.touches = inpututil.AppendJustReleasedTouchIDs(c.touches[:0])
	if len(c.touches) > 0 || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		q.Push(events.KeyEvent{Key: PointerKey, State: events.KeyReleased})
	}
}

// AnyReleased reports whether evs contain a release of any key.
func AnyReleased(evs []events.KeyEvent) bool {
	for _, e := range evs {
		if e.State == events.KeyReleased {
			return true
		}
	}
	return false
}
