package game

import "fmt"

// Scoreboard is the text shown while Playing.
type Scoreboard struct {
	Best string
	Next string
	Time string
}

// Refresh recomputes the three lines from the clock and the stack.
func (b *Scoreboard) Refresh(clock *ScoreClock, stack *ProgressStack) {
	b.Best = fmt.Sprintf("Best: %.1f", clock.Best())
	if label, ok := stack.Next(); ok {
		b.Next = fmt.Sprintf("Next card: %s", label)
	} else {
		b.Next = "Next card: -"
	}
	b.Time = fmt.Sprintf("Time: %.1f", clock.Elapsed())
}

// Lines returns the board in display order.
func (b *Scoreboard) Lines() []string {
	return []string{b.Best, b.Next, b.Time}
}
