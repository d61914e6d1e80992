package game

import "github.com/go-gl/mathgl/mgl64"

// TrophyRow is the next-card-position cursor where captured cards are laid
// out in a visible row, one step apart along X.
type TrophyRow struct {
	next mgl64.Vec3
	step float64
}

// NewTrophyRow starts the row at origin.
func NewTrophyRow(origin mgl64.Vec3, step float64) *TrophyRow {
	return &TrophyRow{next: origin, step: step}
}

// Place returns the slot for the next captured card and advances the cursor.
func (r *TrophyRow) Place() mgl64.Vec3 {
	p := r.next
	r.next = r.next.Add(mgl64.Vec3{r.step, 0, 0})
	return p
}

// Next returns the slot the next captured card will take.
func (r *TrophyRow) Next() mgl64.Vec3 {
	return r.next
}
