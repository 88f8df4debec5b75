package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/floorplan/audio"
	"github.com/lixenwraith/floorplan/camera"
	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/engine"
	"github.com/lixenwraith/floorplan/input"
	"github.com/lixenwraith/floorplan/logging"
	"github.com/lixenwraith/floorplan/parameter"
	"github.com/lixenwraith/floorplan/venue"
	"github.com/lixenwraith/floorplan/vmath"
)

var viewLog = logging.Module("viewer")

// activeScreen is restored by emergencyReset on a crash
var activeScreen tcell.Screen

// emergencyReset gives the terminal back after a panic
func emergencyReset() {
	if activeScreen != nil {
		activeScreen.Fini()
		activeScreen = nil
	}
	os.Stdout.WriteString("\x1b[?1000l\x1b[?1002l\x1b[?1006l\x1b[?25h\x1b[0m\x1b[?1049l")
	os.Stdout.Sync()
}

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBooth  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	stylePin    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// pin is a resolved marker on the map
type pin struct {
	code string
	at   venue.Coordinate
}

// viewer is the terminal host: all fields are touched only inside clock.RunSafe or a clock tick
type viewer struct {
	screen tcell.Screen
	width  int
	height int

	cat      *venue.Catalog
	resolver *venue.Resolver
	venueIDs []string
	venueIdx int
	venue    *venue.Venue
	pins     []pin

	loop       *engine.Loop
	clock      *engine.Clock
	cam        camera.Camera
	ctl        *camera.Controller
	classifier *input.Classifier
	mouse      *input.MouseAdapter
	player     *audio.Player

	entering bool
	entry    []rune
	status   string
}

func runViewer(cat *venue.Catalog, cfg config.Config) error {
	first, err := pickVenue(cat, cfg.VenueID)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	activeScreen = screen
	defer func() {
		if activeScreen != nil {
			activeScreen.Fini()
			activeScreen = nil
		}
	}()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)

	v := newViewer(screen, cat, cfg)
	if cfg.Sound {
		if err := v.player.Initialize(); err != nil {
			viewLog.Warn().Err(err).Msg("audio unavailable, continuing without cues")
		}
		defer v.player.Cleanup()
	}
	v.width, v.height = screen.Size()
	v.openVenue(first.ID)

	events := make(chan tcell.Event, parameter.EventChannelSize)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				emergencyReset()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v.clock.Start()
	defer v.clock.Stop()

	redraw := time.NewTicker(parameter.RedrawInterval)
	defer redraw.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit := false
			v.clock.RunSafe(func() { quit = v.handle(ev) })
			if quit {
				return nil
			}
		case <-redraw.C:
			v.clock.RunSafe(v.draw)
		}
	}
}

func newViewer(screen tcell.Screen, cat *venue.Catalog, cfg config.Config) *viewer {
	loop := engine.NewLoop(nil)
	v := &viewer{
		screen:   screen,
		cat:      cat,
		resolver: venue.NewResolver(cat.Registry()),
		venueIDs: cat.Registry().IDs(),
		loop:     loop,
		clock:    engine.NewClock(loop, parameter.FrameUpdateInterval),
		cam:      camera.New(parameter.CameraDefaultScale),
		mouse:    input.NewMouseAdapter(),
		player:   audio.NewPlayer(nil),
	}
	v.ctl = camera.NewController(&v.cam, loop, cfg.Momentum())
	v.ctl.OnCoast(func(vmath.Point) { v.player.PlayCoast() })
	v.classifier = input.NewClassifier(v.ctl.Handlers(), nil)
	return v
}

// openVenue switches venue, resolving its listed pins and fitting the view
func (v *viewer) openVenue(id string) {
	ven, ok := v.cat.Registry().Venue(id)
	if !ok {
		return
	}
	for i, vid := range v.venueIDs {
		if vid == id {
			v.venueIdx = i
		}
	}
	v.venue = ven
	v.pins = v.pins[:0]
	for _, raw := range v.cat.Pins(id) {
		c, err := v.resolver.ResolveCode(raw, id)
		if err != nil {
			viewLog.Warn().Str("venue", id).Str("code", raw).Err(err).Msg("skipping listed pin")
			continue
		}
		v.pins = append(v.pins, pin{code: raw, at: c})
	}
	v.ctl.StopMomentum()
	v.classifier.Reset()
	v.fit()
	v.status = fmt.Sprintf("%s: %d pins", ven.Name, len(v.pins))
	viewLog.Info().Str("venue", id).Int("pins", len(v.pins)).Msg("venue opened")
}

// hostSize is the map area in host pixels
func (v *viewer) hostSize() (float64, float64) {
	return float64(v.width) * v.mouse.CellWidth, float64(v.height-1) * v.mouse.CellHeight
}

func (v *viewer) fit() {
	w, h := v.hostSize()
	v.cam.Fit(v.venue.Width, v.venue.Height, w, h)
}

// handle processes one terminal event, returning true to quit
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.width, v.height = ev.Size()
		v.screen.Sync()
	case *tcell.EventMouse:
		for _, te := range v.mouse.Translate(ev) {
			v.classifier.Handle(te)
		}
	case *tcell.EventKey:
		if v.entering {
			v.handleEntry(ev)
			return false
		}
		return v.handleKey(ev)
	}
	return false
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	step := parameter.CameraKeyPanPixels
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.keyPan(step, 0)
	case tcell.KeyRight:
		v.keyPan(-step, 0)
	case tcell.KeyUp:
		v.keyPan(0, step)
	case tcell.KeyDown:
		v.keyPan(0, -step)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case '+', '=':
			v.keyZoom(1.25)
		case '-', '_':
			v.keyZoom(0.8)
		case 'r':
			v.ctl.StopMomentum()
			v.fit()
		case 'n':
			if len(v.venueIDs) > 0 {
				v.openVenue(v.venueIDs[(v.venueIdx+1)%len(v.venueIDs)])
			}
		case 'c':
			v.pins = v.pins[:0]
			v.status = "pins cleared"
		case '/', 'p':
			v.entering = true
			v.entry = v.entry[:0]
		}
	}
	return false
}

func (v *viewer) keyPan(dx, dy float64) {
	v.ctl.StopMomentum()
	v.cam.Pan(dx, dy)
}

// keyZoom runs a synthetic pinch around the view centre so keys and wheel share one path
func (v *viewer) keyZoom(factor float64) {
	w, h := v.hostSize()
	for _, te := range v.mouse.Pinch(vmath.Pt(w/2, h/2), factor, time.Now()) {
		v.classifier.Handle(te)
	}
}

func (v *viewer) handleEntry(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		v.entering = false
	case tcell.KeyEnter:
		v.entering = false
		v.dropPin(string(v.entry))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(v.entry) > 0 {
			v.entry = v.entry[:len(v.entry)-1]
		}
	case tcell.KeyRune:
		v.entry = append(v.entry, ev.Rune())
	}
}

// dropPin resolves raw on the current venue and marks it
func (v *viewer) dropPin(raw string) {
	c, err := v.resolver.ResolveCode(raw, v.venue.ID)
	if err != nil {
		v.status = err.Error()
		v.player.PlayError()
		viewLog.Debug().Str("code", raw).Err(err).Msg("pin rejected")
		return
	}
	v.pins = append(v.pins, pin{code: raw, at: c})
	v.status = fmt.Sprintf("%s at %s", raw, formatCoord(c))
	v.player.PlayPin()
}

// toCell maps a world point to a terminal cell
func (v *viewer) toCell(p vmath.Point) (int, int) {
	s := v.cam.WorldToScreen(p)
	return int(math.Floor(s.X / v.mouse.CellWidth)), int(math.Floor(s.Y / v.mouse.CellHeight))
}

func (v *viewer) inMap(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.width && y < v.height-1
}

func (v *viewer) put(x, y int, r rune, style tcell.Style) {
	if v.inMap(x, y) {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

func (v *viewer) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.put(x, y, r, style)
		x++
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	if v.venue == nil {
		v.screen.Show()
		return
	}

	// Map outline
	x0, y0 := v.toCell(vmath.Pt(0, 0))
	x1, y1 := v.toCell(vmath.Pt(v.venue.Width, v.venue.Height))
	for x := x0; x <= x1; x++ {
		v.put(x, y0, '─', styleBorder)
		v.put(x, y1, '─', styleBorder)
	}
	for y := y0; y <= y1; y++ {
		v.put(x0, y, '│', styleBorder)
		v.put(x1, y, '│', styleBorder)
	}

	// Authored booths
	for _, r := range v.venue.Table {
		bx0, by0 := v.toCell(vmath.Pt(r.X, r.Y))
		bx1, by1 := v.toCell(vmath.Pt(r.X+r.Width, r.Y+r.Height))
		for y := by0; y <= by1; y++ {
			for x := bx0; x <= bx1; x++ {
				v.put(x, y, '▒', styleBooth)
			}
		}
	}

	for _, p := range v.pins {
		x, y := v.toCell(p.at.Point())
		v.put(x, y, '●', stylePin)
		v.text(x+1, y, p.code, styleLabel)
	}

	v.drawStatus()
	v.screen.Show()
}

func (v *viewer) drawStatus() {
	y := v.height - 1
	var line string
	if v.entering {
		line = "pin> " + string(v.entry) + "_"
	} else {
		state := v.classifier.Phase().String()
		if v.ctl.Coasting() {
			state = "coasting"
		}
		line = fmt.Sprintf(" %s  x%.2f  %s  %s  [drag/wheel/arrows +/- r n / q]",
			v.venue.Name, v.cam.Scale, state, v.status)
	}
	for x := 0; x < v.width; x++ {
		v.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	x := 0
	for _, r := range line {
		if x >= v.width {
			break
		}
		v.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
}
