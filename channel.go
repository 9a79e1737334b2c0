package amqp

import (
	"io"
	"log/slog"
	"sync"
)

// DispatchFunc is the signature of the generated two-level dispatch switch.
type DispatchFunc func(reg *Registry, ch *Channel, classID, methodID uint16, dec *Decoder) error

// ContentHandler receives content header and body frames.
type ContentHandler func(ch *Channel, f Frame) error

// Options configures a Channel. Generated code provides ChannelOptions to
// fill Registry, Dispatch and Interrupts for its schema.
type Options struct {
	Registry   *Registry
	Dispatch   DispatchFunc
	Interrupts Interrupts
	Content    ContentHandler
	Logger     *slog.Logger
}

// Channel sends methods on one channel number and reads frames from the
// transport. Writes are serialised; reads (Await, Serve) must come from a
// single goroutine at a time. Await only completes on frames carrying the
// channel's own number; frames for other numbers on a shared transport go to
// the generic dispatch path.
type Channel struct {
	id         uint16
	reader     *FrameReader
	registry   *Registry
	dispatch   DispatchFunc
	interrupts Interrupts
	content    ContentHandler
	log        *slog.Logger

	mu     sync.Mutex
	writer *FrameWriter
}

// NewChannel creates a channel over the given transport.
func NewChannel(rw io.ReadWriter, id uint16, opts Options) *Channel {
	registry := opts.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Channel{
		id:         id,
		reader:     NewFrameReader(rw),
		writer:     NewFrameWriter(rw),
		registry:   registry,
		dispatch:   opts.Dispatch,
		interrupts: opts.Interrupts,
		content:    opts.Content,
		log:        logger.With("channel", id),
	}
}

// ID returns the channel number used for outbound frames.
func (ch *Channel) ID() uint16 {
	return ch.id
}

// Registry returns the handler registry owned by this channel.
func (ch *Channel) Registry() *Registry {
	return ch.registry
}

// Send encodes m as a method frame, finalises the frame length and writes
// it to the transport.
func (ch *Channel) Send(m Method) error {
	return ch.SendOn(ch.id, m)
}

// SendOn is Send with an explicit channel number. Connection class methods
// travel on channel 0.
func (ch *Channel) SendOn(channel uint16, m Method) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if err := ch.writer.WriteMethod(channel, m); err != nil {
		return err
	}
	ch.log.Debug("sent method", "method", m.MethodName(), "on", channel)
	return nil
}

// SendHeartbeat writes a heartbeat frame on channel 0.
func (ch *Channel) SendHeartbeat() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.writer.WriteFrame(Frame{Type: FrameHeartbeat})
}

// Await blocks until a method frame matching into's class and method ids is
// read on this channel and decoded into into. Unrelated frames are routed to
// the generic dispatch path while waiting. See Awaiter for the state machine.
func (ch *Channel) Await(into Method) error {
	_, err := ch.AwaitAny(into)
	return err
}

// AwaitAny is Await for a method with several possible replies. It returns
// the record from into that matched.
func (ch *Channel) AwaitAny(into ...Method) (Method, error) {
	a := ch.NewAwaiter(into...)
	for !a.Done() {
		if err := a.Step(); err != nil {
			return nil, err
		}
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	return a.Matched(), nil
}

// Serve reads and dispatches frames until the transport fails. Recoverable
// dispatch conditions are logged and skipped. The transport error is
// returned unchanged; io.EOF signals an orderly end of stream.
func (ch *Channel) Serve() error {
	for {
		f, err := ch.reader.ReadFrame()
		if err != nil {
			return err
		}
		if err := ch.route(f); err != nil {
			return err
		}
	}
}

func (ch *Channel) route(f Frame) error {
	switch f.Type {
	case FrameMethod:
		dec := NewDecoder(f.Payload)
		cm, err := dec.DecodeClassMethod()
		if err != nil {
			return err
		}
		return ch.dispatchMethod(cm, dec)
	case FrameHeartbeat:
		ch.log.Debug("received heartbeat")
		return nil
	default:
		return ch.routeContent(f)
	}
}

// dispatchMethod hands a method frame to the generated dispatch switch.
// Recoverable conditions are logged and reported as handled.
func (ch *Channel) dispatchMethod(cm ClassMethod, dec *Decoder) error {
	var err error
	if ch.dispatch == nil {
		err = &UnknownClassError{Class: cm.Class}
	} else {
		err = ch.dispatch(ch.registry, ch, cm.Class, cm.Method, dec)
	}
	if err != nil && IsRecoverable(err) {
		ch.log.Warn("dropped inbound method", "class", cm.Class, "method", cm.Method, "error", err)
		return nil
	}
	return err
}

func (ch *Channel) routeContent(f Frame) error {
	if ch.content == nil {
		ch.log.Debug("discarded content frame", "type", f.Type.String(), "size", len(f.Payload))
		return nil
	}
	return ch.content(ch, f)
}
