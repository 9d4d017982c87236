// Package model holds the game state. Positional and play state models embed
// an Observable and publish an event from every mutator; their fields are
// unexported so that state can only change through those mutators.
package model

import (
	"github.com/mo-shahab/go-pong-mvc/observable"
)

// Fixed sizes of the game objects.
const (
	PaddleWidth  = 10
	PaddleHeight = 40
	BallSize     = 10

	// the vertical window in which a paddle returns the ball. it is shorter
	// than PaddleHeight; see the note in DESIGN.md
	CollisionSpan = 30
)

// Default ball step per tick.
const (
	DefaultHSpeed = 2
	DefaultVSpeed = 2
)

// Stage is the size of the playing field. It is set once and never observed.
type Stage struct {
	Width  int
	Height int
}

// Player is a paddle. X and Y are the top-left corner.
type Player struct {
	*observable.Observable
	x, y int
}

// NewPlayer creates a paddle at the origin.
func NewPlayer() *Player {
	p := &Player{}
	p.Observable = observable.New(p)
	return p
}

// X returns the horizontal position of the paddle.
func (p *Player) X() int { return p.x }

// Y returns the vertical position of the paddle.
func (p *Player) Y() int { return p.y }

// SetX moves the paddle horizontally and notifies listeners.
func (p *Player) SetX(value int) {
	p.x = value
	p.Publish(observable.PositionChanged{Axis: observable.AxisX, Value: p.x})
}

// SetY moves the paddle vertically and notifies listeners.
func (p *Player) SetY(value int) {
	p.y = value
	p.Publish(observable.PositionChanged{Axis: observable.AxisY, Value: p.y})
}

// Ball is the ball. X and Y are the top-left corner. Speed changes are not
// published, only position changes are.
type Ball struct {
	*observable.Observable
	x, y   int
	hSpeed int
	vSpeed int
}

// NewBall creates a ball at the origin moving with the default speed.
func NewBall() *Ball {
	b := &Ball{
		hSpeed: DefaultHSpeed,
		vSpeed: DefaultVSpeed,
	}
	b.Observable = observable.New(b)
	return b
}

// X returns the horizontal position of the ball.
func (b *Ball) X() int { return b.x }

// Y returns the vertical position of the ball.
func (b *Ball) Y() int { return b.y }

// HSpeed returns the horizontal step per tick.
func (b *Ball) HSpeed() int { return b.hSpeed }

// VSpeed returns the vertical step per tick.
func (b *Ball) VSpeed() int { return b.vSpeed }

// SetX moves the ball horizontally and notifies listeners.
func (b *Ball) SetX(value int) {
	b.x = value
	b.Publish(observable.PositionChanged{Axis: observable.AxisX, Value: b.x})
}

// SetY moves the ball vertically and notifies listeners.
func (b *Ball) SetY(value int) {
	b.y = value
	b.Publish(observable.PositionChanged{Axis: observable.AxisY, Value: b.y})
}

// SetSpeed replaces both speed components.
func (b *Ball) SetSpeed(h, v int) {
	b.hSpeed = h
	b.vSpeed = v
}

// InvertHSpeed reverses the horizontal direction.
func (b *Ball) InvertHSpeed() { b.hSpeed = -b.hSpeed }

// InvertVSpeed reverses the vertical direction.
func (b *Ball) InvertVSpeed() { b.vSpeed = -b.vSpeed }

// PlayState records whether the game loop should be running. The zero state
// is stopped.
type PlayState struct {
	*observable.Observable
	running bool
}

// NewPlayState creates a stopped PlayState.
func NewPlayState() *PlayState {
	s := &PlayState{}
	s.Observable = observable.New(s)
	return s
}

// Running returns the current state.
func (s *PlayState) Running() bool { return s.running }

// SetState changes the state and notifies listeners. Listeners are notified
// even when the value does not change.
func (s *PlayState) SetState(value bool) {
	s.running = value
	s.Publish(observable.StateChanged{Running: s.running})
}
