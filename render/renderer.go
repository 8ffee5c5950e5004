// Package render draws the stage, the entity and the reality effects on a tcell screen
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/reality-bender/constants"
	"github.com/lixenwraith/reality-bender/engine"
	"github.com/lixenwraith/reality-bender/events"
	"github.com/lixenwraith/reality-bender/vmath"
	"github.com/mattn/go-runewidth"
)

const (
	maxAlerts    = 4
	rippleRadius = 150.0 // world units at the end of the ripple
	rippleSteps  = 64

	glyphObstacle = '█'
	glyphGoal     = '░'
	glyphEntity   = '█'
	glyphRipple   = '·'
	glyphDown     = '▼'
	glyphUp       = '▲'
)

const controlsText = "Reality Bender Controls: ←→↑↓ Move │ G Gravity │ D Dimension │ T Time │ Q Quit"

// Options configures a Renderer
type Options struct {
	Title     string
	ColorMode ColorMode
}

type alert struct {
	text  string
	shown time.Time
}

// Renderer draws frames and keeps the transient effect state fed by game events
// Draw and HandleEvent run on the loop goroutine
type Renderer struct {
	screen  tcell.Screen
	surface engine.Surface
	clock   engine.Clock
	opts    Options

	alerts      []alert
	flashUntil  time.Time
	rippleStart time.Time
	shiftStart  time.Time
	victoryDim  int
}

// NewRenderer creates a renderer for surface on screen
func NewRenderer(screen tcell.Screen, surface engine.Surface, clock engine.Clock, opts Options) *Renderer {
	return &Renderer{
		screen:  screen,
		surface: surface,
		clock:   clock,
		opts:    opts,
	}
}

// ===== EVENTS =====

// HandleEvent starts the effect for a game event
func (r *Renderer) HandleEvent(ev events.GameEvent) {
	ts := ev.Timestamp
	if ts.IsZero() {
		ts = r.clock.Now()
	}

	switch ev.Type {
	case events.EventKeyPressed:
		r.flashUntil = ts.Add(constants.KeyPressFlashDuration)

	case events.EventGravityToggled:
		r.pushAlert(constants.AlertGravity, ts)
		r.rippleStart = ts

	case events.EventDimensionShifted:
		if p, ok := ev.Payload.(*events.DimensionPayload); ok {
			r.pushAlert(fmt.Sprintf("Dimension %d", p.Dimension), ts)
		}
		r.shiftStart = ts

	case events.EventTimeToggled:
		if p, ok := ev.Payload.(*events.TimePayload); ok && p.Reversed {
			r.pushAlert(constants.AlertTime, ts)
		}

	case events.EventCollision:
		r.pushAlert(constants.AlertCollision, ts)

	case events.EventVictory:
		if p, ok := ev.Payload.(*events.VictoryPayload); ok {
			r.victoryDim = p.Dimension
		}
	}
}

// EventTypes returns the events with a visual effect
func (r *Renderer) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventKeyPressed,
		events.EventGravityToggled,
		events.EventDimensionShifted,
		events.EventTimeToggled,
		events.EventCollision,
		events.EventVictory,
	}
}

func (r *Renderer) pushAlert(text string, ts time.Time) {
	r.alerts = append(r.alerts, alert{text: text, shown: ts})
	if len(r.alerts) > maxAlerts {
		r.alerts = r.alerts[len(r.alerts)-maxAlerts:]
	}
}

// Alerts returns the alert texts still visible at now, oldest first
func (r *Renderer) Alerts(now time.Time) []string {
	live := r.alerts[:0]
	for _, a := range r.alerts {
		if now.Sub(a.shown) < constants.AlertDuration {
			live = append(live, a)
		}
	}
	r.alerts = live

	out := make([]string, len(live))
	for i, a := range live {
		out[i] = a.text
	}
	return out
}

// ===== FRAME =====

// Draw renders one frame from the stage geometry and the game snapshot
func (r *Renderer) Draw(snap engine.Snapshot) {
	now := r.clock.Now()
	w, h := r.screen.Size()
	ww, wh := r.surface.Viewport()
	l := NewLayout(w, h, ww, wh)
	pal := r.Palette(snap, now)

	r.screen.Clear()
	r.drawField(l, pal)
	r.drawRipple(l, pal, now)
	r.drawBox(l, r.surface.Goal(), glyphGoal, r.style(pal.Goal, pal.Background))
	for _, o := range r.surface.Obstacles() {
		r.drawBox(l, o, glyphObstacle, r.style(pal.Obstacle, pal.Background))
	}
	r.drawEntity(l, pal, snap, now)
	r.drawHUD(l, pal, snap)
	r.drawAlerts(l, pal, now)

	switch snap.Outcome {
	case engine.OutcomeVictory:
		r.drawVictory(l, pal)
	case engine.OutcomeCollision:
		r.drawRetry(l, pal)
	}

	r.screen.Show()
}

// Palette returns the colors for the frame: dimension hue, time tint, shift flash
func (r *Renderer) Palette(snap engine.Snapshot, now time.Time) Palette {
	pal := DimensionPalette(snap.Mode.Dimension)
	if snap.Mode.TimeReversed {
		pal = pal.Reversed()
	}
	if !r.shiftStart.IsZero() {
		if elapsed := now.Sub(r.shiftStart); elapsed < constants.DimensionShiftFlashDuration {
			fade := 1 - float64(elapsed)/float64(constants.DimensionShiftFlashDuration)
			pal.Background = Blend(pal.Background, pal.Flash, 0.5*fade)
		}
	}
	return pal
}

func (r *Renderer) style(fg, bg tcell.Color) tcell.Style {
	if r.opts.ColorMode == ColorMono {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

func (r *Renderer) drawField(l Layout, pal Palette) {
	style := r.style(pal.Text, pal.Background)
	for y := l.OffsetY; y < l.OffsetY+l.Rows; y++ {
		for x := l.OffsetX; x < l.OffsetX+l.Cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawBox(l Layout, box vmath.Rect, glyph rune, style tcell.Style) {
	if box.Empty() {
		return
	}
	x0, y0, x1, y1 := l.Span(box)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// drawRipple draws an expanding ring around the entity after a gravity flip
func (r *Renderer) drawRipple(l Layout, pal Palette, now time.Time) {
	if r.rippleStart.IsZero() {
		return
	}
	elapsed := now.Sub(r.rippleStart)
	if elapsed < 0 || elapsed >= constants.ParadoxEffectDuration {
		return
	}

	progress := float64(elapsed) / float64(constants.ParadoxEffectDuration)
	radius := rippleRadius * progress
	center := r.surface.EntityBox().Center()
	ww, wh := r.surface.Viewport()
	style := r.style(Blend(pal.Ripple, pal.Background, progress), pal.Background)

	for i := 0; i < rippleSteps; i++ {
		angle := 2 * math.Pi * float64(i) / rippleSteps
		p := vmath.Point{X: center.X + radius*math.Cos(angle), Y: center.Y + radius*math.Sin(angle)}
		if p.X < 0 || p.Y < 0 || p.X >= ww || p.Y >= wh {
			continue
		}
		x, y := l.Cell(p)
		r.screen.SetContent(x, y, glyphRipple, nil, style)
	}
}

func (r *Renderer) drawEntity(l Layout, pal Palette, snap engine.Snapshot, now time.Time) {
	color := pal.Entity
	if now.Before(r.flashUntil) {
		color = pal.Flash
	}
	box := r.surface.EntityBox()
	r.drawBox(l, box, glyphEntity, r.style(color, pal.Background))

	// Gravity marker on the cell holding the box center
	glyph := glyphDown
	if snap.Mode.GravityDirection == constants.GravityUp {
		glyph = glyphUp
	}
	x, y := l.Cell(box.Center())
	markerStyle := r.style(pal.Background, color)
	if r.opts.ColorMode == ColorMono {
		markerStyle = markerStyle.Reverse(true)
	}
	r.screen.SetContent(x, y, glyph, nil, markerStyle)
}

func (r *Renderer) drawHUD(l Layout, pal Palette, snap engine.Snapshot) {
	row := l.HUDRow()
	if row < 0 {
		return
	}
	style := r.style(pal.Text, pal.HUD)
	for x := 0; x < l.ScreenW; x++ {
		r.screen.SetContent(x, row, ' ', nil, style)
	}

	status := hudStatus(snap)
	if r.opts.Title != "" {
		status = r.opts.Title + " │ " + status
	}
	statusW := runewidth.StringWidth(status)

	room := l.ScreenW - statusW - 2
	if room > 0 {
		r.drawText(1, row, runewidth.Truncate(controlsText, room, "…"), style)
	}
	r.drawText(max(l.ScreenW-statusW-1, 0), row, status, style)
}

func hudStatus(snap engine.Snapshot) string {
	gravity := "▼"
	if snap.Mode.GravityDirection == constants.GravityUp {
		gravity = "▲"
	}
	timeState := "→"
	switch {
	case snap.Mode.TimeReversed:
		timeState = fmt.Sprintf("◀ rec %d", snap.HistoryLen)
	case snap.Rewinding:
		timeState = fmt.Sprintf("◀◀ %d", snap.HistoryLen)
	}
	return fmt.Sprintf("Dim %d │ Gravity %s │ Time %s", snap.Mode.Dimension, gravity, timeState)
}

func (r *Renderer) drawAlerts(l Layout, pal Palette, now time.Time) {
	style := r.style(pal.Background, pal.Text)
	if r.opts.ColorMode == ColorMono {
		style = style.Reverse(true)
	}
	for i, text := range r.Alerts(now) {
		y := l.OffsetY + 1 + i
		r.drawCentered(l, y, " "+text+" ", style)
	}
}

func (r *Renderer) drawVictory(l Layout, pal Palette) {
	lines := []string{
		constants.VictoryTitle,
		fmt.Sprintf("Dimensions mastered: %d", r.victoryDim),
		"",
		constants.VictoryButton + "   [q] Quit",
	}
	r.drawPanel(l, pal, lines)
}

func (r *Renderer) drawRetry(l Layout, pal Palette) {
	r.drawPanel(l, pal, []string{"[r] Restart now"})
}

// drawPanel draws lines in a bordered box centered on the play area
func (r *Renderer) drawPanel(l Layout, pal Palette, lines []string) {
	inner := 0
	for _, s := range lines {
		inner = max(inner, runewidth.StringWidth(s))
	}
	w := inner + 4
	h := len(lines) + 2
	x0 := l.OffsetX + (l.Cols-w)/2
	y0 := l.OffsetY + (l.Rows-h)/2

	style := r.style(pal.Text, pal.HUD)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+h-1) && (x == x0 || x == x0+w-1):
				ch = cornerRune(x == x0, y == y0)
			case y == y0 || y == y0+h-1:
				ch = '─'
			case x == x0 || x == x0+w-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
	for i, s := range lines {
		r.drawCentered(l, y0+1+i, s, style)
	}
}

func cornerRune(left, top bool) rune {
	switch {
	case left && top:
		return '┌'
	case top:
		return '┐'
	case left:
		return '└'
	}
	return '┘'
}

func (r *Renderer) drawCentered(l Layout, y int, s string, style tcell.Style) {
	x := l.OffsetX + (l.Cols-runewidth.StringWidth(s))/2
	r.drawText(max(x, 0), y, s, style)
}

// drawText writes s from x, advancing by display width, and returns the next column
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	w, _ := r.screen.Size()
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x+cw > w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += cw
	}
	return x
}
