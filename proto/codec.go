package proto

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrMalformed is returned by Unmarshal when the input is not a valid
// encoding of a Message.
var ErrMalformed = errors.New("malformed message")

// Marshal encodes the message. It fails if the field selected by Type is not
// set.
func Marshal(m *Message) ([]byte, error) {
	if m == nil {
		return nil, errors.New("marshal: nil message")
	}

	b := appendEnum(nil, 1, int32(m.Type))

	switch m.Type {
	case MsgTypeHello:
		if m.Hello == nil {
			return nil, fmt.Errorf("marshal: %v message without body", m.Type)
		}
		b = appendBytes(b, 2, m.Hello.marshal(nil))
	case MsgTypeFrame:
		if m.Frame == nil {
			return nil, fmt.Errorf("marshal: %v message without body", m.Type)
		}
		b = appendBytes(b, 3, m.Frame.marshal(nil))
	case MsgTypeKey:
		if m.Key == nil {
			return nil, fmt.Errorf("marshal: %v message without body", m.Type)
		}
		b = appendBytes(b, 4, m.Key.marshal(nil))
	case MsgTypeError:
		if m.Error == nil {
			return nil, fmt.Errorf("marshal: %v message without body", m.Type)
		}
		b = appendBytes(b, 5, m.Error.marshal(nil))
	default:
		return nil, fmt.Errorf("marshal: unsupported message type %d", m.Type)
	}

	return b, nil
}

// Unmarshal decodes b into m. Unknown fields are skipped.
func Unmarshal(b []byte, m *Message) error {
	*m = Message{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Type = MsgType(v)
			return n, nil
		case num >= 2 && num <= 5 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			var err error
			switch num {
			case 2:
				m.Hello = &HelloMessage{}
				err = m.Hello.unmarshal(v)
			case 3:
				m.Frame = &FrameMessage{}
				err = m.Frame.unmarshal(v)
			case 4:
				m.Key = &KeyMessage{}
				err = m.Key.unmarshal(v)
			case 5:
				m.Error = &ErrorMessage{}
				err = m.Error.unmarshal(v)
			}
			return n, err
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

// walk calls field for every field in b. field consumes the value and returns
// the number of bytes used, or a negative protowire error code.
func walk(b []byte, field func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		n, err := field(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func appendEnum(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendSint(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v)))
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func (h *HelloMessage) marshal(b []byte) []byte {
	b = appendString(b, 1, h.SessionID)
	b = appendEnum(b, 2, h.Width)
	return appendEnum(b, 3, h.Height)
}

func (h *HelloMessage) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			h.SessionID = v
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			h.Width = int32(v)
			return n, nil
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			h.Height = int32(v)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

func (f *FrameMessage) marshal(b []byte) []byte {
	b = appendEnum(b, 1, f.Width)
	b = appendEnum(b, 2, f.Height)

	var cmd []byte
	for i := range f.Commands {
		cmd = f.Commands[i].marshal(cmd[:0])
		b = appendBytes(b, 3, cmd)
	}
	return b
}

func (f *FrameMessage) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			f.Width = int32(v)
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			f.Height = int32(v)
			return n, nil
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			var c Command
			if err := c.unmarshal(v); err != nil {
				return n, err
			}
			f.Commands = append(f.Commands, c)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

func (c *Command) marshal(b []byte) []byte {
	b = appendEnum(b, 1, int32(c.Op))
	b = appendSint(b, 2, c.X)
	b = appendSint(b, 3, c.Y)
	b = appendSint(b, 4, c.W)
	b = appendSint(b, 5, c.H)
	if c.Color != 0 {
		b = protowire.AppendTag(b, 6, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, c.Color)
	}
	return b
}

func (c *Command) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			c.Op = Op(v)
			return n, nil
		case num >= 2 && num <= 5 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			s := int32(protowire.DecodeZigZag(v))
			switch num {
			case 2:
				c.X = s
			case 3:
				c.Y = s
			case 4:
				c.W = s
			case 5:
				c.H = s
			}
			return n, nil
		case num == 6 && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			c.Color = v
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

func (k *KeyMessage) marshal(b []byte) []byte {
	b = appendEnum(b, 1, int32(k.Action))
	return appendEnum(b, 2, k.Code)
}

func (k *KeyMessage) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			k.Action = KeyAction(v)
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			k.Code = int32(v)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

func (e *ErrorMessage) marshal(b []byte) []byte {
	return appendString(b, 1, e.Error)
}

func (e *ErrorMessage) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(b)
			e.Error = v
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}
