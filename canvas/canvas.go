// Package canvas provides a drawing surface that records draw calls as wire
// commands instead of rasterising them. A front-end replays the recorded
// frame onto its real surface, either locally or after sending it to a
// browser.
package canvas

import (
	"image/color"

	pb "github.com/mo-shahab/go-pong-mvc/proto"
	"github.com/mo-shahab/go-pong-mvc/view"
)

// Canvas records draw calls. It implements view.Surface.
//
// A ClearRect covering the whole canvas makes every earlier command
// invisible, so the commands before it are discarded. As the view always
// starts a redraw that way, the canvas holds at most one frame.
type Canvas struct {
	Width  int
	Height int

	commands []pb.Command
	dirty    bool
}

// New creates a Canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height}
}

// ClearRect implements the view.Surface interface.
func (c *Canvas) ClearRect(x, y, w, h int) {
	if x <= 0 && y <= 0 && x+w >= c.Width && y+h >= c.Height {
		c.commands = c.commands[:0]
	}
	c.commands = append(c.commands, pb.Command{
		Op: pb.OpClear,
		X:  int32(x),
		Y:  int32(y),
		W:  int32(w),
		H:  int32(h),
	})
	c.dirty = true
}

// FillRect implements the view.Surface interface.
func (c *Canvas) FillRect(x, y, w, h int, col color.Color) {
	c.commands = append(c.commands, pb.Command{
		Op:    pb.OpFill,
		X:     int32(x),
		Y:     int32(y),
		W:     int32(w),
		H:     int32(h),
		Color: pb.PackColor(col),
	})
	c.dirty = true
}

// Dirty returns true if anything has been drawn since the last call to
// MarkClean.
func (c *Canvas) Dirty() bool {
	return c.dirty
}

// MarkClean resets the dirty flag. The recorded commands are kept.
func (c *Canvas) MarkClean() {
	c.dirty = false
}

// Frame returns a copy of the recorded commands.
func (c *Canvas) Frame() *pb.FrameMessage {
	f := &pb.FrameMessage{
		Width:    int32(c.Width),
		Height:   int32(c.Height),
		Commands: make([]pb.Command, len(c.commands)),
	}
	copy(f.Commands, c.commands)
	return f
}

// Replay draws a recorded frame onto dst.
func Replay(frame *pb.FrameMessage, dst view.Surface) {
	for _, cmd := range frame.Commands {
		switch cmd.Op {
		case pb.OpClear:
			dst.ClearRect(int(cmd.X), int(cmd.Y), int(cmd.W), int(cmd.H))
		case pb.OpFill:
			dst.FillRect(int(cmd.X), int(cmd.Y), int(cmd.W), int(cmd.H), cmd.NRGBA())
		}
	}
}
