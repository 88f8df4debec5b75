package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/venue"
)

func newTestViewer(t *testing.T) (*viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cat, err := venue.Load(bytes.NewReader(builtinVenues))
	if err != nil {
		t.Fatalf("builtin venues: %v", err)
	}
	v := newViewer(screen, cat, config.Config{Friction: 0.95, Threshold: 0.01})
	v.width, v.height = 80, 24
	v.openVenue("expo-hall")
	return v, screen
}

func typeRunes(v *viewer, s string) {
	for _, r := range s {
		v.handle(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestViewer_OpenVenueResolvesPins(t *testing.T) {
	v, _ := newTestViewer(t)
	if len(v.pins) != 6 {
		t.Fatalf("pins = %d, want 6", len(v.pins))
	}
	if v.pins[0].code != "A-01" || v.pins[0].at != (venue.Coordinate{X: 100, Y: 50}) {
		t.Errorf("first pin = %+v", v.pins[0])
	}

	// the whole map fits the view
	w, h := v.hostSize()
	br := v.cam.WorldToScreen(venue.Coordinate{X: 1200, Y: 1600}.Point())
	if br.X > w+1e-9 || br.Y > h+1e-9 {
		t.Errorf("map corner %v outside view %vx%v", br, w, h)
	}
}

func TestViewer_PinEntry(t *testing.T) {
	v, _ := newTestViewer(t)

	v.handle(tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModNone))
	if !v.entering {
		t.Fatal("'/' did not start pin entry")
	}
	typeRunes(v, "A-0")
	v.handle(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	typeRunes(v, "03")
	v.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if v.entering || len(v.pins) != 7 {
		t.Fatalf("entering=%v pins=%d after Enter", v.entering, len(v.pins))
	}
	if last := v.pins[6]; last.code != "A-03" || last.at != (venue.Coordinate{X: 100, Y: 70}) {
		t.Errorf("dropped pin = %+v", last)
	}

	// A rejected code leaves the pins alone and reports the error
	v.handle(tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModNone))
	typeRunes(v, "A03")
	v.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if len(v.pins) != 7 {
		t.Errorf("pins = %d after rejected code, want 7", len(v.pins))
	}
	if !strings.Contains(v.status, "A03") {
		t.Errorf("status = %q, want the rejected code", v.status)
	}
}

func TestViewer_Keys(t *testing.T) {
	v, _ := newTestViewer(t)

	before := v.cam
	v.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if v.cam.OffsetX != before.OffsetX+40 {
		t.Errorf("left arrow offset %v -> %v, want +40", before.OffsetX, v.cam.OffsetX)
	}

	scale := v.cam.Scale
	v.handle(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	if math.Abs(v.cam.Scale-scale*1.25) > 1e-9 {
		t.Errorf("zoom in scale %v -> %v, want x1.25", scale, v.cam.Scale)
	}
	if v.classifier.Snapshot().Active {
		t.Error("keyboard zoom left a gesture open")
	}

	v.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if v.cam != before {
		t.Errorf("reset camera = %+v, want %+v", v.cam, before)
	}

	v.handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if v.venue.ID != "annex" {
		t.Errorf("next venue = %q, want annex", v.venue.ID)
	}

	if !v.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("'q' did not quit")
	}
	if !v.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc did not quit")
	}
}

func TestViewer_MouseDragPans(t *testing.T) {
	v, _ := newTestViewer(t)
	start := v.cam.OffsetX

	v.handle(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	v.handle(tcell.NewEventMouse(12, 10, tcell.Button1, tcell.ModNone))
	if got := v.cam.OffsetX - start; got != 16 {
		t.Errorf("drag of 2 cells moved %v px, want 16", got)
	}
	v.handle(tcell.NewEventMouse(12, 10, tcell.ButtonNone, tcell.ModNone))
	if v.classifier.Snapshot().Active {
		t.Error("gesture still active after release")
	}
}

func TestViewer_DrawsPins(t *testing.T) {
	v, screen := newTestViewer(t)
	v.draw()

	pins := 0
	for y := 0; y < 23; y++ {
		for x := 0; x < 80; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == '●' {
				pins++
			}
		}
	}
	if pins == 0 {
		t.Error("no pin glyphs drawn")
	}

	var status strings.Builder
	for x := 0; x < 80; x++ {
		r, _, _, _ := screen.GetContent(x, 23)
		status.WriteRune(r)
	}
	if !strings.Contains(status.String(), "Expo Hall") {
		t.Errorf("status line = %q", status.String())
	}
}
