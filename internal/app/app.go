//go:build ebiten

package app

import (
	"time"

	"hexlife/internal/render"
	"hexlife/internal/ui"
	"hexlife/pkg/hexgrid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.MapPainter
	hud     *ui.HUD

	scale int
	mapW  int
	mapH  int
}

// New constructs a Game drawing s onto a map of cfg.Width*cfg.Height pixels.
func New(s *Session, cfg *Config) *Game {
	scale := max(cfg.Scale, 1)
	painter := render.NewMapPainter(cfg.Width, cfg.Height)
	w, h := painter.Projection().Size()
	return &Game{
		session: s,
		painter: painter,
		hud:     ui.NewHUD(s, cfg.Panel, h*scale),
		scale:   scale,
		mapW:    w,
		mapH:    h,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reset(s.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.ClearMarks()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.LogMarked()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.CyclePattern()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.StampMarked()
	}
	if ll, ok := g.cursorLatLng(); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyE) {
			s.Enrich(ll)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyD) {
			s.Deplete(ll)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		s.IncreaseResolution()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		s.DecreaseResolution()
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for n, key := range digitKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if shift {
			s.ToggleSurvive(n)
		} else {
			s.ToggleEmerge(n)
		}
	}

	g.handleMouse()
	g.hud.Update(g.mapW * g.scale)

	s.Update()
	return nil
}

func (g *Game) handleMouse() {
	var button Button
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		button = Primary
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		button = Secondary
	default:
		return
	}
	if ll, ok := g.cursorLatLng(); ok {
		g.session.Click(ll, button)
	}
}

// cursorLatLng returns the map position under the cursor.
func (g *Game) cursorLatLng() (hexgrid.LatLng, bool) {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.mapW*g.scale || my >= g.mapH*g.scale {
		return hexgrid.LatLng{}, false
	}
	return g.painter.Projection().LatLng(mx/g.scale, my/g.scale), true
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Game(), g.scale)
	g.hud.Draw(screen, g.mapW*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.mapW*g.scale + g.hud.Width(), g.mapH * g.scale
}
