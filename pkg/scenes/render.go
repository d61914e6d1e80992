package scenes

import (
	"image/color"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/game"
)

var (
	backgroundColor = color.RGBA{R: 25, G: 25, B: 112, A: 255}
	cardFaceColor   = color.RGBA{R: 245, G: 245, B: 235, A: 255}
	cardEdgeColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	trophyEdgeColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	laserColor      = color.RGBA{R: 50, G: 205, B: 50, A: 255}
	shipColor       = color.RGBA{R: 200, G: 200, B: 220, A: 255}
)

const lineHeight = 16

// drawWorld renders every visible entity through the camera and the active
// prompt. The scene is wireframe-style: projected card outlines, laser
// streaks, debris dots and the ship's nose.
func drawWorld(screen *ebiten.Image, w *World) {
	screen.Fill(backgroundColor)
	cam := w.CameraComponent()
	if cam == nil {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	em := w.Entities

	cards := em.GetEntitiesWith(ecs.HasTransform | ecs.HasCard)
	// far to near
	slices.SortFunc(cards, func(a, b ecs.EntityID) int {
		ra, _ := em.Get(a)
		rb, _ := em.Get(b)
		za, zb := ra.Transform.Position.Z(), rb.Transform.Position.Z()
		switch {
		case za < zb:
			return -1
		case za > zb:
			return 1
		}
		return 0
	})
	for _, id := range cards {
		rec, _ := em.Get(id)
		drawCard(screen, cam, rec, w.Config.Card.Width, w.Config.Card.Width*w.Config.Card.Aspect, width, height)
	}

	debris := effectColor(w.Config.Effect.Color)
	for _, id := range em.GetEntitiesWith(ecs.HasTransform | ecs.HasEffect) {
		rec, _ := em.Get(id)
		if x, y, ok := cam.Project(rec.Transform.Position, width, height); ok {
			vector.DrawFilledRect(screen, float32(x)-1, float32(y)-1, 3, 3, debris, false)
		}
	}

	for _, id := range em.GetEntitiesWith(ecs.HasTransform | ecs.HasProjectile) {
		rec, _ := em.Get(id)
		half := rec.Transform.Forward().Mul(0.8)
		drawSegment(screen, cam, rec.Transform.Position.Sub(half), rec.Transform.Position.Add(half), 2, laserColor, width, height)
	}

	for _, id := range em.GetEntitiesWith(ecs.HasTransform | ecs.HasShip) {
		rec, _ := em.Get(id)
		t := rec.Transform
		nose := t.Position.Add(t.Forward().Mul(1.5))
		left := t.Position.Add(t.Rotation.Rotate(mgl64.Vec3{-0.8, 0, 0.5}))
		right := t.Position.Add(t.Rotation.Rotate(mgl64.Vec3{0.8, 0, 0.5}))
		drawSegment(screen, cam, left, nose, 2, shipColor, width, height)
		drawSegment(screen, cam, nose, right, 2, shipColor, width, height)
		drawSegment(screen, cam, right, left, 2, shipColor, width, height)
	}

	for _, id := range em.GetEntitiesWith(ecs.HasPrompt) {
		rec, _ := em.Get(id)
		drawLines(screen, rec.Prompt.Text, 5, 15)
	}
}

func drawCard(screen *ebiten.Image, cam *components.CameraComponent, rec *ecs.Record, cw, ch float64, width, height int) {
	t := rec.Transform
	local := [4]mgl64.Vec3{
		{-cw / 2, -ch / 2, 0},
		{cw / 2, -ch / 2, 0},
		{cw / 2, ch / 2, 0},
		{-cw / 2, ch / 2, 0},
	}
	var xs, ys [4]float32
	for i, c := range local {
		x, y, ok := cam.Project(t.Position.Add(t.Rotation.Rotate(c)), width, height)
		if !ok {
			return
		}
		xs[i], ys[i] = float32(x), float32(y)
	}

	minX, maxX := slices.Min(xs[:]), slices.Max(xs[:])
	minY, maxY := slices.Min(ys[:]), slices.Max(ys[:])
	vector.DrawFilledRect(screen, minX, minY, maxX-minX, maxY-minY, cardFaceColor, false)

	edge := cardEdgeColor
	if rec.Card.Captured {
		edge = trophyEdgeColor
	}
	for i := range local {
		j := (i + 1) % len(local)
		vector.StrokeLine(screen, xs[i], ys[i], xs[j], ys[j], 1, edge, false)
	}

	label := rec.Card.ID.RankLabel()
	if suit := string(rec.Card.ID.Suit()); suit != "" {
		label += " " + strings.ToUpper(suit[:1])
	}
	ebitenutil.DebugPrintAt(screen, label, int(minX)+2, int(minY)+2)
}

func drawSegment(screen *ebiten.Image, cam *components.CameraComponent, a, b mgl64.Vec3, stroke float32, clr color.Color, width, height int) {
	x0, y0, ok0 := cam.Project(a, width, height)
	x1, y1, ok1 := cam.Project(b, width, height)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), stroke, clr, false)
}

func drawScoreboard(screen *ebiten.Image, board *game.Scoreboard) {
	x := screen.Bounds().Dx() - 160
	for i, line := range board.Lines() {
		ebitenutil.DebugPrintAt(screen, line, x, 5+i*lineHeight)
	}
}

func drawLines(screen *ebiten.Image, text string, x, y int) {
	for i, line := range strings.Split(text, "\n") {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*lineHeight)
	}
}

func effectColor(c [3]float64) color.RGBA {
	return color.RGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: 255}
}

func channel(v float64) uint8 {
	return uint8(mgl64.Clamp(v, 0, 1) * 255)
}
