// game/engine.go
package game

import (
	"log"

	"github.com/mo-shahab/go-pong-mvc/controller"
	"github.com/mo-shahab/go-pong-mvc/model"
	"github.com/mo-shahab/go-pong-mvc/scheduler"
	"github.com/mo-shahab/go-pong-mvc/view"
)

// Pong ties together the models, the view and the start up controller of one
// game. It must only be used from the goroutine that drives its scheduler.
type Pong struct {
	models  *model.Locator
	view    *view.View
	startUp controller.Controller
	started bool
}

// New creates a game drawing to surface, which must be width by height units.
// Recurring work is handed to sched.
func New(surface view.Surface, width, height int, sched scheduler.Scheduler, opts Options) *Pong {
	models := model.NewLocator(width, height)
	if opts.BallHSpeed != 0 || opts.BallVSpeed != 0 {
		models.Ball.SetSpeed(opts.BallHSpeed, opts.BallVSpeed)
	}

	return &Pong{
		models:  models,
		view:    view.New(surface, models, sched, view.DefaultControllers(models)),
		startUp: controller.NewStartUp(models),
	}
}

// Start places the ball and paddles and starts the ball loop. Calling Start
// more than once has no effect.
func (p *Pong) Start() {
	if p.started {
		return
	}
	p.started = true
	p.startUp.Execute()
	log.Printf("game started on %dx%d stage", p.models.Stage.Width, p.models.Stage.Height)
}

// Stop halts the ball loop.
func (p *Pong) Stop() {
	if !p.models.PlayState.Running() {
		return
	}
	p.models.PlayState.SetState(false)
	log.Printf("game stopped: %v", p.Snapshot())
}

// Close stops the game and detaches the view from the models. The game cannot
// be used afterwards.
func (p *Pong) Close() {
	p.Stop()
	p.view.Detach()
}

// KeyDown forwards a key press to the view.
func (p *Pong) KeyDown(code int) {
	p.view.OnKeyDown(code)
}

// KeyUp forwards a key release to the view.
func (p *Pong) KeyUp(code int) {
	p.view.OnKeyUp(code)
}

// Running returns true while the ball loop is active.
func (p *Pong) Running() bool {
	return p.view.Running()
}

// Models returns the models of the game.
func (p *Pong) Models() *model.Locator {
	return p.models
}

// Snapshot returns the current game state.
func (p *Pong) Snapshot() GameStateSnapshot {
	return GameStateSnapshot{
		BallX:          p.models.Ball.X(),
		BallY:          p.models.Ball.Y(),
		BallHSpeed:     p.models.Ball.HSpeed(),
		BallVSpeed:     p.models.Ball.VSpeed(),
		LeftPaddlePos:  p.models.Player1.Y(),
		RightPaddlePos: p.models.Player2.Y(),
		Running:        p.models.PlayState.Running(),
	}
}
