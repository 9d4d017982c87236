package game_test

import (
	"testing"

	"github.com/mo-shahab/go-pong-mvc/canvas"
	"github.com/mo-shahab/go-pong-mvc/game"
	"github.com/mo-shahab/go-pong-mvc/scheduler"
	"github.com/mo-shahab/go-pong-mvc/test"
	"github.com/mo-shahab/go-pong-mvc/view"
)

func TestStart(t *testing.T) {
	c := canvas.New(400, 300)
	sched := &scheduler.Manual{}
	g := game.New(c, 400, 300, sched, game.Options{})

	test.ExpectFailure(t, g.Running())
	g.Start()
	g.Start()
	test.ExpectSuccess(t, g.Running())
	test.ExpectEquality(t, sched.Active(), 1)

	s := g.Snapshot()
	test.ExpectEquality(t, s, game.GameStateSnapshot{
		BallX:          195,
		BallY:          145,
		BallHSpeed:     2,
		BallVSpeed:     2,
		LeftPaddlePos:  130,
		RightPaddlePos: 130,
		Running:        true,
	})

	// the last redraw is held by the canvas
	f := c.Frame()
	test.ExpectEquality(t, len(f.Commands), 5)
	test.ExpectEquality(t, f.Commands[4].X, int32(195))
	test.ExpectEquality(t, f.Commands[4].Y, int32(145))
}

func TestTicksAndKeys(t *testing.T) {
	c := canvas.New(400, 300)
	sched := &scheduler.Manual{}
	g := game.New(c, 400, 300, sched, game.Options{BallHSpeed: -1, BallVSpeed: 1})
	g.Start()

	g.KeyDown(view.KeyCodeUp)
	sched.Advance(100)
	g.KeyUp(view.KeyCodeUp)
	sched.Advance(10)

	s := g.Snapshot()
	test.ExpectEquality(t, s.BallX, 85)
	test.ExpectEquality(t, s.BallY, 255)
	test.ExpectEquality(t, s.LeftPaddlePos, 30)

	// 255 / 290 * 260
	test.ExpectEquality(t, s.RightPaddlePos, 228)
}

func TestStopAndClose(t *testing.T) {
	c := canvas.New(400, 300)
	sched := &scheduler.Manual{}
	g := game.New(c, 400, 300, sched, game.Options{})
	g.Start()
	g.KeyDown(view.KeyCodeDown)

	g.Stop()
	test.ExpectFailure(t, g.Running())
	test.ExpectEquality(t, sched.Active(), 1)

	g.Close()
	test.ExpectEquality(t, sched.Active(), 0)
	test.ExpectEquality(t, g.Models().Ball.Len(), 0)
}
