// Package cube implements the navigation cube widget: the pick-region
// arena, pointer interaction, typed click/drag events, and the per-frame
// rotation sync against the observed camera.
package cube

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/navcube/internal/config"
	"github.com/Faultbox/navcube/internal/logger"
	"github.com/Faultbox/navcube/internal/picking"
	"github.com/Faultbox/navcube/internal/regions"
	"github.com/Faultbox/navcube/pkg/math"
)

// Pointer movement below this many pixels between press and release still
// counts as a click.
const dragThreshold = 3

// The overlay camera sits at this multiple of the cube edge length.
const overlayCameraFactor = 2.8

const overlayFOV = float32(gomath.Pi / 5)

// Options is the widget's fully resolved, immutable configuration.
type Options struct {
	Convention   regions.Convention
	Distance     float32
	ViewportSize int
	Corner       Corner
	EdgeLength   float32
	Margin       float32

	FaceColor    Color
	HoverColor   Color
	OutlineColor Color
	TextColor    Color

	Labels     [6]string // indexed Front..Bottom
	LabelScale int
}

// OptionsFromConfig resolves a validated CubeConfig into widget options.
func OptionsFromConfig(cc config.CubeConfig) (Options, error) {
	conv, err := regions.ParseConvention(cc.CoordinateSystem)
	if err != nil {
		return Options{}, err
	}
	corner, err := ParseCorner(cc.Corner)
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		Convention:   conv,
		Distance:     cc.CameraDistance,
		ViewportSize: cc.ViewportSize,
		Corner:       corner,
		EdgeLength:   cc.EdgeLength,
		Margin:       cc.Margin,
		Labels: [6]string{
			cc.Labels.Front, cc.Labels.Back, cc.Labels.Left,
			cc.Labels.Right, cc.Labels.Top, cc.Labels.Bottom,
		},
		LabelScale: cc.LabelScale,
	}

	for _, c := range []struct {
		dst *Color
		src string
	}{
		{&opts.FaceColor, cc.FaceColor},
		{&opts.HoverColor, cc.HoverColor},
		{&opts.OutlineColor, cc.OutlineColor},
		{&opts.TextColor, cc.TextColor},
	} {
		parsed, err := ParseHexColor(c.src)
		if err != nil {
			return Options{}, err
		}
		*c.dst = parsed
	}

	return opts, nil
}

// Widget is the navigation cube. It owns the region pose table (rebuilt
// only through explicit setters), the pick zones, and the display rotation
// state updated once per frame.
type Widget struct {
	opts  Options
	table regions.Table
	zones []Zone
	ev    events

	display math.Quat
	hover   regions.ID

	winW, winH int

	pointerDown  bool
	dragging     bool
	downX, downY float32
	lastX, lastY float32
}

// New builds a widget. Convention and distance are validated by the table
// build; presentation values must have been validated by config.
func New(opts Options) (*Widget, error) {
	table, err := regions.BuildTable(opts.Convention, opts.Distance)
	if err != nil {
		return nil, fmt.Errorf("building region table: %w", err)
	}
	if opts.EdgeLength <= 0 || opts.Margin <= 0 || opts.Margin >= 0.5 {
		return nil, fmt.Errorf("cube geometry edge=%v margin=%v: %w",
			opts.EdgeLength, opts.Margin, regions.ErrInvalidArgument)
	}

	return &Widget{
		opts:    opts,
		table:   table,
		zones:   BuildZones(opts.EdgeLength, opts.Margin),
		display: math.QuatIdentity(),
	}, nil
}

// Options returns the resolved options.
func (w *Widget) Options() Options {
	return w.opts
}

// Table returns the current region pose table.
func (w *Widget) Table() regions.Table {
	return w.table
}

// Zones returns the pick zones in cube-local space. Callers must treat the
// slice as read-only.
func (w *Widget) Zones() []Zone {
	return w.zones
}

// OnFaceClick sets the click handler. At most one handler is kept.
func (w *Widget) OnFaceClick(fn FaceClickHandler) {
	w.ev.faceClick = fn
}

// OnDrag sets the drag handler. At most one handler is kept.
func (w *Widget) OnDrag(fn DragHandler) {
	w.ev.drag = fn
}

// SetWindowSize informs the widget of the host window size, which anchors
// the overlay viewport.
func (w *Widget) SetWindowSize(width, height int) {
	w.winW, w.winH = width, height
}

// SetDistance rebuilds the pose table for a new camera distance.
func (w *Widget) SetDistance(distance float32) error {
	table, err := regions.BuildTable(w.opts.Convention, distance)
	if err != nil {
		return err
	}
	w.opts.Distance = distance
	w.table = table
	return nil
}

// SetConvention rebuilds the pose table for a new coordinate convention.
func (w *Widget) SetConvention(conv regions.Convention) error {
	table, err := regions.BuildTable(conv, w.opts.Distance)
	if err != nil {
		return err
	}
	w.opts.Convention = conv
	w.table = table
	return nil
}

// Update recomputes the display rotation from the observed camera
// orientation. Call once per rendered frame.
func (w *Widget) Update(camera math.Quat) error {
	display, err := regions.SyncRotation(camera, w.opts.Convention)
	if err != nil {
		return err
	}
	w.display = display
	return nil
}

// DisplayRotation returns the rotation the renderer applies to the cube
// mesh.
func (w *Widget) DisplayRotation() math.Quat {
	return w.display
}

// Hover returns the region currently under the pointer, or 0.
func (w *Widget) Hover() regions.ID {
	return w.hover
}

// ViewportRect returns the overlay rectangle in window pixels, origin
// top-left.
func (w *Widget) ViewportRect() (x, y, width, height int) {
	return w.opts.Corner.Rect(w.winW, w.winH, w.opts.ViewportSize)
}

// Contains reports whether a window-space point lies inside the overlay.
func (w *Widget) Contains(px, py float32) bool {
	x, y, vw, vh := w.ViewportRect()
	return px >= float32(x) && px < float32(x+vw) && py >= float32(y) && py < float32(y+vh)
}

// Camera returns the overlay's fixed view and projection matrices.
func (w *Widget) Camera() (view, proj math.Mat4) {
	eye := math.Vec3{Z: w.opts.EdgeLength * overlayCameraFactor}
	view = math.LookAt(eye, math.Vec3{}, math.Vec3{Y: 1})
	proj = math.Perspective(overlayFOV, 1, 0.1, w.opts.EdgeLength*10)
	return view, proj
}

// Pick resolves a window-space point to the region under it.
func (w *Widget) Pick(px, py float32) (regions.ID, bool) {
	if !w.Contains(px, py) {
		return 0, false
	}
	x, y, vw, vh := w.ViewportRect()

	view, proj := w.Camera()
	inv := proj.Mul(view).Inverse()
	ray := picking.ScreenToRay(px-float32(x), py-float32(y), float32(vw), float32(vh), inv)

	// The cube is drawn rotated by the display rotation; picking happens in
	// its local space.
	local := ray.Transform(w.display.Invert(), math.Vec3{})
	return PickZone(w.zones, local)
}

// HandlePointerDown begins a possible click or drag. Returns true if the
// event landed on the overlay.
func (w *Widget) HandlePointerDown(px, py float32) bool {
	if !w.Contains(px, py) {
		return false
	}
	w.pointerDown = true
	w.dragging = false
	w.downX, w.downY = px, py
	w.lastX, w.lastY = px, py
	return true
}

// HandlePointerMove updates hover state and, while the pointer is held,
// dispatches drag deltas once movement passes the click threshold.
func (w *Widget) HandlePointerMove(px, py float32) {
	if !w.pointerDown {
		if id, ok := w.Pick(px, py); ok {
			w.hover = id
		} else {
			w.hover = 0
		}
		return
	}

	if !w.dragging {
		dx := px - w.downX
		dy := py - w.downY
		if dx*dx+dy*dy >= dragThreshold*dragThreshold {
			w.dragging = true
		}
	}
	if w.dragging {
		w.ev.emitDrag(px-w.lastX, py-w.lastY)
		w.lastX, w.lastY = px, py
	}
}

// HandlePointerUp finishes the gesture: a press and release without
// crossing the drag threshold resolves to a region click.
func (w *Widget) HandlePointerUp(px, py float32) {
	wasClick := w.pointerDown && !w.dragging
	w.pointerDown = false
	w.dragging = false

	if !wasClick {
		return
	}

	id, ok := w.Pick(px, py)
	if !ok {
		return
	}
	cfg, err := w.table.Get(id)
	if err != nil {
		logger.Error("picked region has no pose", zap.Stringer("region", id), zap.Error(err))
		return
	}

	logger.Debug("region clicked", zap.Stringer("region", id))
	w.ev.emitFaceClick(id, cfg)
}
