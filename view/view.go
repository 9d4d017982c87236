// Package view draws the models and connects the play state to the recurring
// controller tasks.
//
// View is a mediator. It observes the models of one game: a change to the
// play state starts or stops the ball task, any other change redraws the
// whole scene. Key events are passed to the View by the front-end, which
// turns held keys into recurring paddle tasks.
package view

import (
	"github.com/google/uuid"
	"github.com/mo-shahab/go-pong-mvc/controller"
	"github.com/mo-shahab/go-pong-mvc/model"
	"github.com/mo-shahab/go-pong-mvc/observable"
	"github.com/mo-shahab/go-pong-mvc/scheduler"
)

// Key codes understood by OnKeyDown. They are the DOM key codes of the arrow
// keys.
const (
	KeyCodeUp   = 38
	KeyCodeDown = 40
)

// Controllers are the per-tick controllers run by the View.
type Controllers struct {
	Ball    controller.Controller
	KeyUp   controller.Controller
	KeyDown controller.Controller
}

// DefaultControllers returns the standard controllers for the models.
func DefaultControllers(models *model.Locator) Controllers {
	return Controllers{
		Ball:    controller.NewBall(models),
		KeyUp:   controller.NewKeyUp(models),
		KeyDown: controller.NewKeyDown(models),
	}
}

type subscription struct {
	observable *observable.Observable
	id         uuid.UUID
}

// View observes the models and redraws the surface.
type View struct {
	surface Surface
	models  *model.Locator
	sched   scheduler.Scheduler
	ctrl    Controllers

	mapView     *MapView
	player1View *PlayerView
	player2View *PlayerView
	ballView    *BallView

	subs []subscription

	ballTask scheduler.TaskID
	keyTask  scheduler.TaskID

	// key events are ignored until play has started
	keysEnabled bool
}

// New creates a View and subscribes it to the models.
func New(surface Surface, models *model.Locator, sched scheduler.Scheduler, ctrl Controllers) *View {
	v := &View{
		surface:     surface,
		models:      models,
		sched:       sched,
		ctrl:        ctrl,
		mapView:     NewMapView(surface, models.Stage.Width, models.Stage.Height),
		player1View: NewPlayerView(surface),
		player2View: NewPlayerView(surface),
		ballView:    NewBallView(surface),
	}

	for _, o := range []*observable.Observable{
		models.PlayState.Observable,
		models.Ball.Observable,
		models.Player1.Observable,
		models.Player2.Observable,
	} {
		if id, ok := o.Subscribe(v); ok {
			v.subs = append(v.subs, subscription{observable: o, id: id})
		}
	}

	return v
}

// Detach unsubscribes the View from the models and stops every task it
// started.
func (v *View) Detach() {
	for _, s := range v.subs {
		s.observable.Unsubscribe(s.id)
	}
	v.subs = nil
	v.stopBall()
	v.stopKey()
	v.keysEnabled = false
}

// Draw clears the surface and draws the field, both paddles and the ball.
func (v *View) Draw() {
	v.surface.ClearRect(0, 0, v.models.Stage.Width, v.models.Stage.Height)
	v.mapView.Draw()
	v.player1View.Draw(v.models.Player1.X(), v.models.Player1.Y())
	v.player2View.Draw(v.models.Player2.X(), v.models.Player2.Y())
	v.ballView.Draw(v.models.Ball.X(), v.models.Ball.Y())
}

// OnUpdate implements the observable.Listener interface.
func (v *View) OnUpdate(source any, ev observable.Event) {
	if source == any(v.models.PlayState) {
		if ev, ok := ev.(observable.StateChanged); ok {
			if ev.Running {
				v.startBall()
			} else {
				v.stopBall()
			}
		}
		return
	}
	v.Draw()
}

// Running returns true if the ball task is active.
func (v *View) Running() bool {
	return v.ballTask != 0
}

func (v *View) startBall() {
	v.keysEnabled = true
	if v.ballTask != 0 {
		return
	}
	v.ballTask = v.sched.Every(v.ctrl.Ball.Execute)
}

func (v *View) stopBall() {
	v.sched.Clear(v.ballTask)
	v.ballTask = 0
}

func (v *View) stopKey() {
	v.sched.Clear(v.keyTask)
	v.keyTask = 0
}

// OnKeyDown starts moving the first paddle while the key is held. Any key
// stops the current movement; only KeyCodeUp and KeyCodeDown start a new one.
func (v *View) OnKeyDown(code int) {
	if !v.keysEnabled {
		return
	}
	v.stopKey()

	switch code {
	case KeyCodeUp:
		v.keyTask = v.sched.Every(v.ctrl.KeyUp.Execute)
	case KeyCodeDown:
		v.keyTask = v.sched.Every(v.ctrl.KeyDown.Execute)
	}
}

// OnKeyUp stops the paddle movement started by OnKeyDown.
func (v *View) OnKeyUp(code int) {
	if !v.keysEnabled {
		return
	}
	v.stopKey()
}
