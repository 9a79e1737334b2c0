package amqp

// Hand-written method records in the shape produced by amqpgen. They back
// the codec, frame, registry and channel tests.

type queueDeclare struct {
	Queue      string
	Passive    bool
	Durable    bool
	Exclusive  bool
	AutoDelete bool
	NoWait     bool
	Arguments  Table
}

func (m *queueDeclare) ClassID() uint16    { return 50 }
func (m *queueDeclare) MethodID() uint16   { return 10 }
func (m *queueDeclare) MethodName() string { return "queue.declare" }

func (m *queueDeclare) Encode(enc *Encoder) error {
	if err := enc.EncodeShort(0); err != nil {
		return err
	}
	if err := enc.EncodeShortString(m.Queue); err != nil {
		return err
	}
	var bits0 uint8
	if m.Passive {
		bits0 |= 1 << 0
	}
	if m.Durable {
		bits0 |= 1 << 1
	}
	if m.Exclusive {
		bits0 |= 1 << 2
	}
	if m.AutoDelete {
		bits0 |= 1 << 3
	}
	if m.NoWait {
		bits0 |= 1 << 4
	}
	if err := enc.EncodeOctet(bits0); err != nil {
		return err
	}
	return enc.EncodeTable(m.Arguments)
}

func (m *queueDeclare) Decode(dec *Decoder) error {
	var err error
	if _, err = dec.DecodeShort(); err != nil {
		return err
	}
	if m.Queue, err = dec.DecodeShortString(); err != nil {
		return err
	}
	bits0, err := dec.DecodeOctet()
	if err != nil {
		return err
	}
	m.Passive = bits0&(1<<0) != 0
	m.Durable = bits0&(1<<1) != 0
	m.Exclusive = bits0&(1<<2) != 0
	m.AutoDelete = bits0&(1<<3) != 0
	m.NoWait = bits0&(1<<4) != 0
	if m.Arguments, err = dec.DecodeTable(); err != nil {
		return err
	}
	return nil
}

type queueDeclareOk struct {
	Queue         string
	MessageCount  uint32
	ConsumerCount uint32
}

func (m *queueDeclareOk) ClassID() uint16    { return 50 }
func (m *queueDeclareOk) MethodID() uint16   { return 11 }
func (m *queueDeclareOk) MethodName() string { return "queue.declare-ok" }

func (m *queueDeclareOk) Encode(enc *Encoder) error {
	if err := enc.EncodeShortString(m.Queue); err != nil {
		return err
	}
	if err := enc.EncodeLong(m.MessageCount); err != nil {
		return err
	}
	return enc.EncodeLong(m.ConsumerCount)
}

func (m *queueDeclareOk) Decode(dec *Decoder) error {
	var err error
	if m.Queue, err = dec.DecodeShortString(); err != nil {
		return err
	}
	if m.MessageCount, err = dec.DecodeLong(); err != nil {
		return err
	}
	if m.ConsumerCount, err = dec.DecodeLong(); err != nil {
		return err
	}
	return nil
}

type connectionClose struct {
	ReplyCode uint16
	ReplyText string
	ClassId   uint16
	MethodId  uint16
}

func (m *connectionClose) ClassID() uint16    { return 10 }
func (m *connectionClose) MethodID() uint16   { return 50 }
func (m *connectionClose) MethodName() string { return "connection.close" }

func (m *connectionClose) Encode(enc *Encoder) error {
	if err := enc.EncodeShort(m.ReplyCode); err != nil {
		return err
	}
	if err := enc.EncodeShortString(m.ReplyText); err != nil {
		return err
	}
	if err := enc.EncodeShort(m.ClassId); err != nil {
		return err
	}
	return enc.EncodeShort(m.MethodId)
}

func (m *connectionClose) Decode(dec *Decoder) error {
	var err error
	if m.ReplyCode, err = dec.DecodeShort(); err != nil {
		return err
	}
	if m.ReplyText, err = dec.DecodeShortString(); err != nil {
		return err
	}
	if m.ClassId, err = dec.DecodeShort(); err != nil {
		return err
	}
	if m.MethodId, err = dec.DecodeShort(); err != nil {
		return err
	}
	return nil
}

type connectionCloseOk struct{}

func (m *connectionCloseOk) ClassID() uint16           { return 10 }
func (m *connectionCloseOk) MethodID() uint16          { return 51 }
func (m *connectionCloseOk) MethodName() string        { return "connection.close-ok" }
func (m *connectionCloseOk) Encode(enc *Encoder) error { return nil }
func (m *connectionCloseOk) Decode(dec *Decoder) error { return nil }

type basicCancel struct {
	ConsumerTag string
	NoWait      bool
}

func (m *basicCancel) ClassID() uint16    { return 60 }
func (m *basicCancel) MethodID() uint16   { return 30 }
func (m *basicCancel) MethodName() string { return "basic.cancel" }

func (m *basicCancel) Encode(enc *Encoder) error {
	if err := enc.EncodeShortString(m.ConsumerTag); err != nil {
		return err
	}
	var bits0 uint8
	if m.NoWait {
		bits0 |= 1 << 0
	}
	return enc.EncodeOctet(bits0)
}

func (m *basicCancel) Decode(dec *Decoder) error {
	var err error
	if m.ConsumerTag, err = dec.DecodeShortString(); err != nil {
		return err
	}
	bits0, err := dec.DecodeOctet()
	if err != nil {
		return err
	}
	m.NoWait = bits0&(1<<0) != 0
	return nil
}

type basicCancelOk struct {
	ConsumerTag string
}

func (m *basicCancelOk) ClassID() uint16    { return 60 }
func (m *basicCancelOk) MethodID() uint16   { return 31 }
func (m *basicCancelOk) MethodName() string { return "basic.cancel-ok" }

func (m *basicCancelOk) Encode(enc *Encoder) error {
	return enc.EncodeShortString(m.ConsumerTag)
}

func (m *basicCancelOk) Decode(dec *Decoder) error {
	var err error
	m.ConsumerTag, err = dec.DecodeShortString()
	return err
}

var (
	_ Method = (*queueDeclare)(nil)
	_ Method = (*queueDeclareOk)(nil)
	_ Method = (*connectionClose)(nil)
	_ Method = (*connectionCloseOk)(nil)
	_ Method = (*basicCancel)(nil)
	_ Method = (*basicCancelOk)(nil)
)

var testMethodInfos = []MethodInfo{
	{Class: 10, Method: 50, Name: "connection.close", Synchronous: true},
	{Class: 10, Method: 51, Name: "connection.close-ok", Synchronous: false},
	{Class: 50, Method: 10, Name: "queue.declare", Synchronous: true},
	{Class: 50, Method: 11, Name: "queue.declare-ok", Synchronous: false},
	{Class: 60, Method: 30, Name: "basic.cancel", Synchronous: true},
	{Class: 60, Method: 31, Name: "basic.cancel-ok", Synchronous: false},
}

// testDispatch mirrors the generated Dispatch switch for the records above.
func testDispatch(reg *Registry, ch *Channel, classID, methodID uint16, dec *Decoder) error {
	var m Method
	switch classID {
	case 10:
		switch methodID {
		case 50:
			m = &connectionClose{}
		case 51:
			m = &connectionCloseOk{}
		default:
			return &UnknownMethodError{Class: classID, Method: methodID}
		}
	case 50:
		switch methodID {
		case 10:
			m = &queueDeclare{}
		case 11:
			m = &queueDeclareOk{}
		default:
			return &UnknownMethodError{Class: classID, Method: methodID}
		}
	case 60:
		switch methodID {
		case 30:
			m = &basicCancel{}
		case 31:
			m = &basicCancelOk{}
		default:
			return &UnknownMethodError{Class: classID, Method: methodID}
		}
	default:
		return &UnknownClassError{Class: classID}
	}
	if err := m.Decode(dec); err != nil {
		return err
	}
	if err := dec.ExpectEnd(); err != nil {
		return err
	}
	return reg.Handle(ch, m)
}

func testInterrupts() Interrupts {
	return Interrupts{
		ConnectionClose: &Interrupt{
			ClassMethod: ClassMethod{Class: 10, Method: 50},
			Acknowledge: func(ch *Channel, channel uint16, dec *Decoder) (Method, error) {
				m := &connectionClose{}
				if err := m.Decode(dec); err != nil {
					return nil, err
				}
				if err := ch.SendOn(channel, &connectionCloseOk{}); err != nil {
					return nil, err
				}
				return m, nil
			},
		},
		ChannelCancel: &Interrupt{
			ClassMethod: ClassMethod{Class: 60, Method: 30},
			Acknowledge: func(ch *Channel, channel uint16, dec *Decoder) (Method, error) {
				m := &basicCancel{}
				if err := m.Decode(dec); err != nil {
					return nil, err
				}
				if err := ch.SendOn(channel, &basicCancelOk{ConsumerTag: m.ConsumerTag}); err != nil {
					return nil, err
				}
				return m, nil
			},
		},
	}
}
