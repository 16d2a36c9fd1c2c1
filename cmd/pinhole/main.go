// pinhole - Terminal Wireframe Fly-Through
// Fly a pinhole camera through a 3D wireframe scene in your terminal.
//
// Controls:
//
//	W/A/S/D     - Move forward/left/backward/right (relative to heading)
//	Space       - Move up
//	Shift+Space - Move down
//	Arrow keys  - Turn (left/right: yaw, up/down: pitch)
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/pinhole/pkg/math3d"
	"github.com/taigrr/pinhole/pkg/render"
	"github.com/taigrr/pinhole/pkg/scene"
)

var (
	targetFPS = flag.Int("fps", 60, "Target FPS")
	bgColor   = flag.String("bg", "20,20,30", "Background color (R,G,B)")
	focal     = flag.Float64("focal", 3.0, "Focal length (world units)")
	speed     = flag.Float64("speed", 3.0, "Movement speed (world units/second)")
	turnRate  = flag.Float64("turn", 60.0, "Turn rate (degrees/second)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pinhole - Terminal Wireframe Fly-Through\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pinhole [options] [model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "With no model argument a demo cube scene is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/A/S/D     - Move\n")
		fmt.Fprintf(os.Stderr, "  Space       - Up (with Shift: down)\n")
		fmt.Fprintf(os.Stderr, "  Arrow keys  - Turn\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// keyState tracks which keys are currently held. The event goroutine writes
// it, the frame loop reads it once per frame.
type keyState struct {
	mu   sync.Mutex
	held map[string]bool
}

func newKeyState() *keyState {
	return &keyState{held: make(map[string]bool)}
}

func (k *keyState) set(name string, down bool) {
	k.mu.Lock()
	k.held[name] = down
	k.mu.Unlock()
}

func (k *keyState) snapshot() map[string]bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make(map[string]bool, len(k.held))
	for name, down := range k.held {
		if down {
			out[name] = true
		}
	}
	return out
}

// axis folds a positive and a negative held key into a -1/0/1 intent.
func axis(keys map[string]bool, pos, neg string) float64 {
	var v float64
	if keys[pos] {
		v++
	}
	if keys[neg] {
		v--
	}
	return v
}

// smoothedAxis eases a movement axis toward its target with a critically
// damped spring, so starts and stops ramp instead of snapping.
type smoothedAxis struct {
	value  float64
	vel    float64
	spring harmonica.Spring
}

func newSmoothedAxis(fps int) smoothedAxis {
	// Frequency 6.0 = responsive, damping 1.0 = no overshoot.
	return smoothedAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

func (a *smoothedAxis) update(target float64) float64 {
	a.value, a.vel = a.spring.Update(a.value, a.vel, target)
	return a.value
}

func buildScene(modelPath string) (*scene.Scene, string, error) {
	if modelPath == "" {
		s := scene.Cube(math3d.V3(0, 6, 0), 2)
		s.Lights = append(s.Lights, scene.Light{
			Pos:   math3d.V3(0, 6, 5),
			Power: 100,
			Color: render.ColorWhite,
		})
		return s, "demo cube", nil
	}
	s, err := scene.FromGLB(modelPath)
	if err != nil {
		return nil, "", fmt.Errorf("load model: %w", err)
	}
	return s, filepath.Base(modelPath), nil
}

func run(modelPath string) error {
	var bgR, bgG, bgB uint8 = 20, 20, 30
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	scn, name, err := buildScene(modelPath)
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	camera := render.NewCamera()
	camera.FocalLength = *focal
	camera.Speed = *speed
	camera.FPS = *targetFPS
	fitCanvas(camera, fbWidth, fbHeight)
	camera.Reframe()
	camera.ImportScene(scn)

	surface := render.NewFramebufferSurface(fb, render.ColorYellow, render.RGB(0, 255, 128))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	keys := newKeyState()

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				surface = render.NewFramebufferSurface(fb, render.ColorYellow, render.RGB(0, 255, 128))
				fitCanvas(camera, fbWidth, fbHeight)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("w"):
					keys.set("w", true)
				case ev.MatchString("a"):
					keys.set("a", true)
				case ev.MatchString("s"):
					keys.set("s", true)
				case ev.MatchString("d"):
					keys.set("d", true)
				case ev.MatchString("space"):
					keys.set("space", true)
				case ev.MatchString("shift+space"):
					keys.set("shift+space", true)
				case ev.MatchString("up"):
					keys.set("up", true)
				case ev.MatchString("down"):
					keys.set("down", true)
				case ev.MatchString("left"):
					keys.set("left", true)
				case ev.MatchString("right"):
					keys.set("right", true)
				}

			case uv.KeyReleaseEvent:
				for _, name := range []string{
					"w", "a", "s", "d", "space", "shift+space",
					"up", "down", "left", "right",
				} {
					if ev.MatchString(name) {
						keys.set(name, false)
					}
				}
			}
		}
	}()

	forward := newSmoothedAxis(*targetFPS)
	strafe := newSmoothedAxis(*targetFPS)
	lift := newSmoothedAxis(*targetFPS)

	targetDuration := time.Second / time.Duration(*targetFPS)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()

		held := keys.snapshot()
		in := render.MoveInput{
			Forward:   forward.update(axis(held, "w", "s")),
			Strafe:    strafe.update(axis(held, "d", "a")),
			Up:        lift.update(axis(held, "space", "shift+space")),
			YawRate:   axis(held, "left", "right") * *turnRate,
			PitchRate: axis(held, "up", "down") * *turnRate,
		}
		camera.Move(in)

		fb.Clear(render.RGB(bgR, bgG, bgB))
		camera.RenderScene(surface)

		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		drawHUD(name, camera)

		elapsed := time.Since(frameStart)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// fitCanvas sizes the camera's raster to the framebuffer and picks the
// expansion ratio that maps the full view-plane width onto it.
func fitCanvas(c *render.Camera, fbWidth, fbHeight int) {
	c.CanvasWidth = float64(fbWidth)
	c.CanvasHeight = float64(fbHeight)
	c.ExpandingRatio = float64(fbWidth) / c.PlaneWidth
	// Keep plane proportions matched to the raster so circles stay round
	// (half-block cells are square-ish at 2 pixels per row).
	c.PlaneHeight = c.PlaneWidth * float64(fbHeight) / float64(fbWidth)
}

// drawHUD overlays position and heading on the top terminal row.
func drawHUD(name string, c *render.Camera) {
	const (
		reset   = "\x1b[0m"
		bgBlack = "\x1b[40m"
		fgCyan  = "\x1b[96m"
	)
	status := fmt.Sprintf("%s%s %s  pos(%.1f, %.1f, %.1f)  yaw %.0f° pitch %.0f° %s",
		bgBlack, fgCyan, name,
		c.Pos.X, c.Pos.Y, c.Pos.Z,
		normDeg(c.RZ), normDeg(c.RX), reset)
	fmt.Printf("\x1b[1;1H\x1b[2K%s", status)
}

// normDeg wraps an angle into [0, 360).
func normDeg(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}
