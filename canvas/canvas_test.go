package canvas_test

import (
	"image/color"
	"testing"

	"github.com/mo-shahab/go-pong-mvc/canvas"
	pb "github.com/mo-shahab/go-pong-mvc/proto"
	"github.com/mo-shahab/go-pong-mvc/test"
	"github.com/mo-shahab/go-pong-mvc/view"
)

func TestFullClearStartsNewFrame(t *testing.T) {
	c := canvas.New(400, 300)
	test.ExpectFailure(t, c.Dirty())

	c.ClearRect(0, 0, 400, 300)
	c.FillRect(0, 0, 400, 300, view.Background)
	c.FillRect(1, 2, 10, 10, view.Foreground)
	test.ExpectSuccess(t, c.Dirty())
	test.ExpectEquality(t, len(c.Frame().Commands), 3)

	c.MarkClean()
	test.ExpectFailure(t, c.Dirty())

	c.ClearRect(0, 0, 400, 300)
	c.FillRect(5, 6, 10, 40, view.Foreground)

	f := c.Frame()
	test.ExpectEquality(t, len(f.Commands), 2)
	test.ExpectEquality(t, f.Width, int32(400))
	test.ExpectEquality(t, f.Commands[1], pb.Command{Op: pb.OpFill, X: 5, Y: 6, W: 10, H: 40, Color: 0xffffffff})

	// a partial clear does not discard anything
	c.ClearRect(5, 6, 10, 40)
	test.ExpectEquality(t, len(c.Frame().Commands), 3)
}

type recording struct {
	clears int
	fills  []color.Color
}

func (r *recording) ClearRect(x, y, w, h int) { r.clears++ }

func (r *recording) FillRect(x, y, w, h int, c color.Color) { r.fills = append(r.fills, c) }

func TestReplay(t *testing.T) {
	c := canvas.New(100, 100)
	c.ClearRect(0, 0, 100, 100)
	c.FillRect(0, 0, 100, 100, view.Background)
	c.FillRect(0, 0, 10, 10, view.Foreground)

	r := &recording{}
	canvas.Replay(c.Frame(), r)
	test.ExpectEquality(t, r.clears, 1)
	test.ExpectEquality(t, len(r.fills), 2)
	test.ExpectEquality(t, r.fills[0], color.Color(color.NRGBA{A: 0xff}))
}
