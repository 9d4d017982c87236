// Package proto contains the messages exchanged between the server and the
// browser client. The schema is in pong.proto; the encoding is the standard
// protobuf wire format, written and read with the protowire package.
package proto

import "image/color"

// MsgType identifies which message a Message carries.
type MsgType int32

// List of valid MsgType values.
const (
	MsgTypeUnknown MsgType = iota
	MsgTypeHello
	MsgTypeFrame
	MsgTypeKey
	MsgTypeError
)

func (t MsgType) String() string {
	switch t {
	case MsgTypeHello:
		return "hello"
	case MsgTypeFrame:
		return "frame"
	case MsgTypeKey:
		return "key"
	case MsgTypeError:
		return "error"
	}
	return "unknown"
}

// Message is the envelope of every websocket message. Exactly one of the
// pointer fields is set, matching Type.
type Message struct {
	Type  MsgType
	Hello *HelloMessage
	Frame *FrameMessage
	Key   *KeyMessage
	Error *ErrorMessage
}

// HelloMessage is sent once by the server when a session starts.
type HelloMessage struct {
	SessionID string
	Width     int32
	Height    int32
}

// FrameMessage is one complete redraw of the stage.
type FrameMessage struct {
	Width    int32
	Height   int32
	Commands []Command
}

// Op is a drawing operation.
type Op int32

// List of valid Op values.
const (
	OpUnknown Op = iota
	OpClear
	OpFill
)

// Command is a single drawing operation on a rectangle. Color is only used by
// OpFill.
type Command struct {
	Op    Op
	X, Y  int32
	W, H  int32
	Color uint32
}

// KeyAction says whether a key was pressed or released.
type KeyAction int32

// List of valid KeyAction values.
const (
	KeyUnknown KeyAction = iota
	KeyDown
	KeyUp
)

// KeyMessage is sent by the client when a key is pressed or released. Code
// is the DOM key code.
type KeyMessage struct {
	Action KeyAction
	Code   int32
}

// ErrorMessage reports a problem with a message sent by the client.
type ErrorMessage struct {
	Error string
}

// PackColor converts a colour to the 0xRRGGBBAA form used by Command.
func PackColor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.R)<<24 | uint32(n.G)<<16 | uint32(n.B)<<8 | uint32(n.A)
}

// NRGBA returns the colour of the command.
func (c Command) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c.Color >> 24),
		G: uint8(c.Color >> 16),
		B: uint8(c.Color >> 8),
		A: uint8(c.Color),
	}
}
