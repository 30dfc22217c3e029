package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents the touch gestures rows react to
type GestureType int

const (
	// GestureTap is a short press without significant movement
	GestureTap GestureType = iota
	// GestureLongPress is a press held beyond LongPressDuration
	GestureLongPress
)

// Gesture detection thresholds
const (
	// LongPressDuration is how long a press must be held to open the row menu
	LongPressDuration = 500 * time.Millisecond
	// TapMoveTolerance is the maximum finger travel for a touch to still count
	// as a tap or long press rather than a scroll
	TapMoveTolerance float32 = 24
)

// GestureCallback receives a recognized gesture and the absolute screen
// position where the touch ended.
type GestureCallback func(gesture GestureType, pos fyne.Position)

// GestureRecognizer turns raw touch events into tap and long-press gestures.
// It tracks a single touch at a time, which is enough for row interactions.
type GestureRecognizer struct {
	onGesture GestureCallback

	touchStart time.Time
	startPos   fyne.Position
}

// NewGestureRecognizer creates a recognizer reporting gestures to onGesture
func NewGestureRecognizer(onGesture GestureCallback) *GestureRecognizer {
	return &GestureRecognizer{onGesture: onGesture}
}

// TouchDown starts tracking a touch
func (gr *GestureRecognizer) TouchDown(event *mobile.TouchEvent) {
	gr.touchStart = time.Now()
	gr.startPos = event.Position
}

// TouchUp finishes tracking and reports the recognized gesture, if any
func (gr *GestureRecognizer) TouchUp(event *mobile.TouchEvent) {
	if gr.touchStart.IsZero() {
		return
	}

	duration := time.Since(gr.touchStart)
	dx := event.Position.X - gr.startPos.X
	dy := event.Position.Y - gr.startPos.Y
	gr.touchStart = time.Time{}

	// Moved too far, treat as a scroll rather than a press
	if dx*dx+dy*dy > TapMoveTolerance*TapMoveTolerance {
		return
	}

	if duration >= LongPressDuration {
		gr.trigger(GestureLongPress, event.AbsolutePosition)
	} else {
		gr.trigger(GestureTap, event.AbsolutePosition)
	}
}

// TouchCancel stops tracking without reporting a gesture
func (gr *GestureRecognizer) TouchCancel(event *mobile.TouchEvent) {
	gr.touchStart = time.Time{}
}

func (gr *GestureRecognizer) trigger(gesture GestureType, pos fyne.Position) {
	if gr.onGesture != nil {
		gr.onGesture(gesture, pos)
	}
}
