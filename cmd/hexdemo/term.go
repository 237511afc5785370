package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/hexdraw"
	"github.com/gogpu/hexdraw/arena"
)

const upperHalfBlock = '▀'

// preview shows the scene in a terminal. Every cell holds two vertically
// stacked pixels: the upper in the foreground of '▀', the lower in the
// background.
type preview struct {
	screen tcell.Screen
	scene  *scene
	mem    *arena.Arena
	cam    *hexdraw.Camera
	out    *hexdraw.Bitmap
}

func runPreview(s *scene, mem *arena.Arena, cam *hexdraw.Camera) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	p := &preview{screen: screen, scene: s, mem: mem, cam: cam}
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		p.draw()
		if !p.handle(<-events) {
			return nil
		}
	}
}

func (p *preview) draw() {
	w, h := p.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if p.out == nil || p.out.Width() != w || p.out.Height() != 2*h {
		p.out = hexdraw.NewBitmap(w, 2*h)
	}
	p.scene.render(p.mem, p.cam, p.out)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(p.out.Pixel(x, 2*y))).
				Background(cellColor(p.out.Pixel(x, 2*y+1)))
			p.screen.SetContent(x, y, upperHalfBlock, nil, style)
		}
	}
	p.screen.Show()
}

func cellColor(px uint32) tcell.Color {
	return tcell.NewRGBColor(int32(px>>16&0xFF), int32(px>>8&0xFF), int32(px&0xFF))
}

// handle applies one input event and reports whether the preview keeps
// running.
func (p *preview) handle(ev tcell.Event) bool {
	// One keypress pans a fixed number of screen pixels.
	step := 8 / max(p.cam.Zoom, 1)

	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			p.cam.Position.X -= step
		case tcell.KeyRight:
			p.cam.Position.X += step
		case tcell.KeyUp:
			p.cam.Position.Y += step
		case tcell.KeyDown:
			p.cam.Position.Y -= step
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case '+', '=':
				p.cam.Zoom = min(p.cam.Zoom*1.25, 256)
			case '-':
				p.cam.Zoom = max(p.cam.Zoom/1.25, 1)
			case 'l':
				p.scene.labels = !p.scene.labels
			}
		}
		p.scene.cursor = hexdraw.HexAt(p.cam.Position)
	}
	return true
}
