package cube

import (
	"go.uber.org/zap"

	"github.com/Faultbox/navcube/internal/logger"
	"github.com/Faultbox/navcube/internal/regions"
)

// FaceClickHandler receives the region a click resolved to and its camera
// pose.
type FaceClickHandler func(id regions.ID, cfg regions.Config)

// DragHandler receives raw pointer deltas in pixels.
type DragHandler func(dx, dy float32)

// events holds the widget's typed subscriptions: one handler per event
// kind. Handlers run synchronously on dispatch; a panicking handler is
// recovered and logged so it cannot break the frame loop.
type events struct {
	faceClick FaceClickHandler
	drag      DragHandler
}

func (e *events) emitFaceClick(id regions.ID, cfg regions.Config) {
	if e.faceClick == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("face click handler panicked",
				zap.Any("panic", r),
				zap.Stringer("region", id))
		}
	}()
	e.faceClick(id, cfg)
}

func (e *events) emitDrag(dx, dy float32) {
	if e.drag == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("drag handler panicked", zap.Any("panic", r))
		}
	}()
	e.drag(dx, dy)
}
