package view

import "github.com/mo-shahab/go-pong-mvc/model"

// MapView draws the playing field background.
type MapView struct {
	surface Surface
	width   int
	height  int
}

// NewMapView creates a MapView covering width by height units.
func NewMapView(surface Surface, width, height int) *MapView {
	return &MapView{surface: surface, width: width, height: height}
}

// Draw fills the whole field with the background colour.
func (v *MapView) Draw() {
	v.surface.FillRect(0, 0, v.width, v.height, Background)
}

// PlayerView draws a paddle.
type PlayerView struct {
	surface Surface
}

// NewPlayerView creates a PlayerView.
func NewPlayerView(surface Surface) *PlayerView {
	return &PlayerView{surface: surface}
}

// Draw draws the paddle with its top-left corner at x, y.
func (v *PlayerView) Draw(x, y int) {
	v.surface.FillRect(x, y, model.PaddleWidth, model.PaddleHeight, Foreground)
}

// BallView draws the ball.
type BallView struct {
	surface Surface
}

// NewBallView creates a BallView.
func NewBallView(surface Surface) *BallView {
	return &BallView{surface: surface}
}

// Draw draws the ball with its top-left corner at x, y.
func (v *BallView) Draw(x, y int) {
	v.surface.FillRect(x, y, model.BallSize, model.BallSize, Foreground)
}
