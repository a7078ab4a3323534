// Package main is the navigation cube demo: a ground grid observed by an
// orbit camera, with the cube widget in a corner steering and mirroring it.
package main

import (
	"fmt"
	gomath "math"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/navcube/internal/camera"
	"github.com/Faultbox/navcube/internal/config"
	"github.com/Faultbox/navcube/internal/cube"
	"github.com/Faultbox/navcube/internal/input"
	"github.com/Faultbox/navcube/internal/logger"
	"github.com/Faultbox/navcube/internal/overlay"
	"github.com/Faultbox/navcube/internal/regions"
	"github.com/Faultbox/navcube/internal/scene"
	"github.com/Faultbox/navcube/internal/window"
	"github.com/Faultbox/navcube/pkg/easing"
	"github.com/Faultbox/navcube/pkg/math"
)

const (
	windowTitle        = "NavCube Demo"
	transitionDuration = 0.6 // seconds per click-to-pose move
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== NavCube Demo ===")

	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		logger.Error("window creation failed", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		logger.Error("OpenGL init failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	winW, winH := win.GetSize()
	gl.Viewport(0, 0, int32(winW), int32(winH))

	opts, err := cube.OptionsFromConfig(cfg.Cube)
	if err != nil {
		logger.Error("cube options invalid", zap.Error(err))
		os.Exit(1)
	}
	widget, err := cube.New(opts)
	if err != nil {
		logger.Error("cube widget creation failed", zap.Error(err))
		os.Exit(1)
	}
	widget.SetWindowSize(winW, winH)

	cubeRenderer, err := overlay.New(opts)
	if err != nil {
		logger.Error("cube renderer creation failed", zap.Error(err))
		os.Exit(1)
	}
	defer cubeRenderer.Close()

	grid, err := scene.NewGrid(200, 20)
	if err != nil {
		logger.Error("grid creation failed", zap.Error(err))
		os.Exit(1)
	}
	defer grid.Close()

	cam := camera.New()

	// Clicking a region animates the camera onto its canonical pose;
	// dragging on the cube orbits the camera directly.
	widget.OnFaceClick(func(id regions.ID, pose regions.Config) {
		logger.Info("navigating to region", zap.Stringer("region", id))
		cam.TransitionTo(pose, transitionDuration, easing.InOutCubic)
	})
	widget.OnDrag(func(dx, dy float32) {
		cam.HandleDrag(dx, dy)
	})

	in := input.New()

	var sceneDragging bool
	var lastMouseX, lastMouseY float32

	lastFrame := time.Now()
	running := true
	for running {
		if in.Update() {
			running = false
		}
		if in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			running = false
		}

		for _, e := range in.Events() {
			switch e.Type {
			case input.EventWindowResize:
				winW, winH = e.Width, e.Height
				gl.Viewport(0, 0, int32(winW), int32(winH))
				widget.SetWindowSize(winW, winH)

			case input.EventMouseDown:
				if e.Button != sdl.BUTTON_LEFT {
					break
				}
				mx, my := float32(e.MouseX), float32(e.MouseY)
				if !widget.HandlePointerDown(mx, my) {
					sceneDragging = true
				}
				lastMouseX, lastMouseY = mx, my

			case input.EventMouseMove:
				mx, my := float32(e.MouseX), float32(e.MouseY)
				widget.HandlePointerMove(mx, my)
				if sceneDragging {
					cam.HandleDrag(mx-lastMouseX, my-lastMouseY)
				}
				lastMouseX, lastMouseY = mx, my

			case input.EventMouseUp:
				if e.Button != sdl.BUTTON_LEFT {
					break
				}
				widget.HandlePointerUp(float32(e.MouseX), float32(e.MouseY))
				sceneDragging = false

			case input.EventMouseWheel:
				cam.HandleZoom(float32(e.WheelY))
			}
		}

		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		cam.Update(dt)
		if err := widget.Update(cam.Orientation()); err != nil {
			logger.Error("widget update failed", zap.Error(err))
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		aspect := float32(winW) / float32(winH)
		proj := math.Perspective(float32(gomath.Pi/4), aspect, 0.1, 5000)
		grid.Draw(proj.Mul(cam.ViewMatrix()))

		cubeRenderer.Draw(widget, winW, winH)

		win.SwapBuffers()
	}

	logger.Info("demo closed normally")
}
