package amqp

import (
	"errors"
	"fmt"
)

// ErrConnectionClosed is the terminal condition reported to a synchronous
// caller when the peer closes the connection while the call is waiting.
var ErrConnectionClosed = errors.New("connection closed")

// ConnectionClosedError carries the decoded close method.
type ConnectionClosedError struct {
	Close Method
}

func (e *ConnectionClosedError) Error() string {
	if e.Close == nil {
		return ErrConnectionClosed.Error()
	}
	return fmt.Sprintf("%s by peer (%s)", ErrConnectionClosed, e.Close.MethodName())
}

func (e *ConnectionClosedError) Unwrap() error {
	return ErrConnectionClosed
}

// Interrupt is a protocol notification that must be acknowledged while a
// synchronous call is waiting. Acknowledge decodes the notification from
// dec, sends the acknowledgement through ch on the channel number the
// notification arrived on and returns the decoded notification.
type Interrupt struct {
	ClassMethod
	Acknowledge func(ch *Channel, channel uint16, dec *Decoder) (Method, error)
}

func (i *Interrupt) matches(cm ClassMethod) bool {
	return i != nil && i.ClassMethod == cm
}

// Interrupts lists the notifications an Awaiter handles itself. A nil entry
// is never matched.
type Interrupts struct {
	// ConnectionClose is acknowledged and then fails the waiting call.
	ConnectionClose *Interrupt
	// ChannelCancel is acknowledged and waiting continues.
	ChannelCancel *Interrupt
}

// AwaitState is a state of the Awaiter state machine.
type AwaitState int

const (
	AwaitingFrameHeader AwaitState = iota
	AwaitingMethodBody
	Matched
	InterruptedConnectionClose
	InterruptedChannelCancel
)

func (s AwaitState) String() string {
	switch s {
	case AwaitingFrameHeader:
		return "AwaitingFrameHeader"
	case AwaitingMethodBody:
		return "AwaitingMethodBody"
	case Matched:
		return "Matched"
	case InterruptedConnectionClose:
		return "InterruptedConnectionClose"
	case InterruptedChannelCancel:
		return "InterruptedChannelCancel"
	default:
		return fmt.Sprintf("AwaitState(%d)", int(s))
	}
}

// Awaiter waits for one of a set of expected methods on its channel. Each
// call to Step performs a single transition:
//
//	AwaitingFrameHeader  -> AwaitingMethodBody          method frame read
//	AwaitingFrameHeader  -> AwaitingFrameHeader         heartbeat or content frame
//	AwaitingMethodBody   -> Matched                     expected class/method (terminal)
//	AwaitingMethodBody   -> InterruptedConnectionClose  connection close
//	AwaitingMethodBody   -> InterruptedChannelCancel    channel cancel
//	AwaitingMethodBody   -> AwaitingFrameHeader         anything else, dispatched
//	InterruptedChannelCancel   -> AwaitingFrameHeader   after acknowledging
//	InterruptedConnectionClose -> done with ErrConnectionClosed, after acknowledging
//
// Expected methods only match on the channel's own number. Connection close
// matches on any channel number; channel cancel only on the channel's own.
// Method frames for other channel numbers are dispatched. A transport read
// error ends the wait and is returned unchanged.
type Awaiter struct {
	ch      *Channel
	into    []Method
	matched Method
	state   AwaitState
	frame   Frame
	dec     *Decoder
	done    bool
	err     error
}

// NewAwaiter prepares a wait for a method matching the ids of any of into.
// On a match the payload is decoded into that record.
func (ch *Channel) NewAwaiter(into ...Method) *Awaiter {
	return &Awaiter{
		ch:    ch,
		into:  into,
		state: AwaitingFrameHeader,
	}
}

// State returns the current state.
func (a *Awaiter) State() AwaitState {
	return a.state
}

// Done reports whether the wait has ended, successfully or not.
func (a *Awaiter) Done() bool {
	return a.done
}

// Matched returns the record the expected method was decoded into, or nil
// while nothing has matched.
func (a *Awaiter) Matched() Method {
	return a.matched
}

// Err returns the terminal error, if any.
func (a *Awaiter) Err() error {
	return a.err
}

func (a *Awaiter) expected(cm ClassMethod) Method {
	if a.frame.Channel != a.ch.id {
		return nil
	}
	for _, m := range a.into {
		if m.ClassID() == cm.Class && m.MethodID() == cm.Method {
			return m
		}
	}
	return nil
}

func (a *Awaiter) fail(err error) error {
	a.done = true
	a.err = err
	return err
}

// Step performs one transition and returns the terminal error if the wait
// failed during it.
func (a *Awaiter) Step() error {
	if a.done {
		return a.err
	}

	switch a.state {
	case AwaitingFrameHeader:
		f, err := a.ch.reader.ReadFrame()
		if err != nil {
			return a.fail(err)
		}
		switch f.Type {
		case FrameMethod:
			a.frame = f
			a.state = AwaitingMethodBody
		case FrameHeartbeat:
			a.ch.log.Debug("received heartbeat")
		default:
			if err := a.ch.routeContent(f); err != nil {
				return a.fail(err)
			}
		}
		return nil

	case AwaitingMethodBody:
		dec := NewDecoder(a.frame.Payload)
		cm, err := dec.DecodeClassMethod()
		if err != nil {
			return a.fail(err)
		}
		a.dec = dec

		if into := a.expected(cm); into != nil {
			if err := into.Decode(dec); err != nil {
				return a.fail(err)
			}
			if err := dec.ExpectEnd(); err != nil {
				return a.fail(err)
			}
			a.ch.log.Debug("received method", "method", into.MethodName())
			a.matched = into
			a.state = Matched
			a.done = true
			return nil
		}

		switch {
		case a.ch.interrupts.ConnectionClose.matches(cm):
			a.state = InterruptedConnectionClose
		case a.ch.interrupts.ChannelCancel.matches(cm) && a.frame.Channel == a.ch.id:
			a.state = InterruptedChannelCancel
		default:
			if err := a.ch.dispatchMethod(cm, dec); err != nil {
				return a.fail(err)
			}
			a.state = AwaitingFrameHeader
		}
		return nil

	case InterruptedConnectionClose:
		closeMethod, err := a.ch.interrupts.ConnectionClose.Acknowledge(a.ch, a.frame.Channel, a.dec)
		if err != nil {
			return a.fail(err)
		}
		return a.fail(&ConnectionClosedError{Close: closeMethod})

	case InterruptedChannelCancel:
		cancel, err := a.ch.interrupts.ChannelCancel.Acknowledge(a.ch, a.frame.Channel, a.dec)
		if err != nil {
			return a.fail(err)
		}
		a.ch.log.Debug("acknowledged cancel while waiting", "method", cancel.MethodName())
		a.state = AwaitingFrameHeader
		return nil

	default:
		return nil
	}
}
