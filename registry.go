package amqp

import (
	"errors"
	"fmt"
)

// Handler receives a decoded inbound method.
type Handler func(ch *Channel, m Method) error

// MethodInfo describes one schema method. Generated code publishes one entry
// per method so registries and diagnostics can name methods.
type MethodInfo struct {
	Class       uint16
	Method      uint16
	Name        string
	Synchronous bool
}

// Slot is a registry entry. A slot with no handler is unregistered.
type Slot struct {
	Info    MethodInfo
	handler Handler
}

// Registered reports whether a handler has been installed.
func (s *Slot) Registered() bool {
	return s.handler != nil
}

// Registry maps (class, method) to a handler. It is owned by a Channel and
// passed explicitly into the generated Dispatch function.
type Registry struct {
	slots map[ClassMethod]*Slot
}

// NewRegistry creates a registry with an unregistered slot per known method.
func NewRegistry(infos ...MethodInfo) *Registry {
	r := &Registry{slots: make(map[ClassMethod]*Slot, len(infos))}
	for _, info := range infos {
		r.slots[ClassMethod{Class: info.Class, Method: info.Method}] = &Slot{Info: info}
	}
	return r
}

// Register installs h for the given method, replacing any earlier handler.
// Passing a nil handler returns the slot to the unregistered state.
func (r *Registry) Register(class, method uint16, h Handler) {
	key := ClassMethod{Class: class, Method: method}
	slot, ok := r.slots[key]
	if !ok {
		slot = &Slot{Info: MethodInfo{Class: class, Method: method}}
		r.slots[key] = slot
	}
	slot.handler = h
}

// Slot returns the registry entry for a method, if the method is known.
func (r *Registry) Slot(class, method uint16) (*Slot, bool) {
	slot, ok := r.slots[ClassMethod{Class: class, Method: method}]
	return slot, ok
}

// Info returns the method description for a known method.
func (r *Registry) Info(class, method uint16) (MethodInfo, bool) {
	slot, ok := r.Slot(class, method)
	if !ok {
		return MethodInfo{}, false
	}
	return slot.Info, true
}

// Handle invokes the handler registered for m. An unregistered slot yields
// a *MethodNotImplementedError.
func (r *Registry) Handle(ch *Channel, m Method) error {
	slot, ok := r.Slot(m.ClassID(), m.MethodID())
	if !ok || !slot.Registered() {
		return &MethodNotImplementedError{Class: m.ClassID(), Method: m.MethodID(), Name: m.MethodName()}
	}
	return slot.handler(ch, m)
}

// UnknownClassError is returned by generated dispatch for a class id the
// schema does not declare.
type UnknownClassError struct {
	Class uint16
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("unknown class %d", e.Class)
}

// UnknownMethodError is returned by generated dispatch for a method id the
// class does not declare.
type UnknownMethodError struct {
	Class  uint16
	Method uint16
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown method %d in class %d", e.Method, e.Class)
}

// MethodNotImplementedError reports a known method with no registered handler.
type MethodNotImplementedError struct {
	Class  uint16
	Method uint16
	Name   string
}

func (e *MethodNotImplementedError) Error() string {
	return fmt.Sprintf("method %s (%d.%d) not implemented", e.Name, e.Class, e.Method)
}

// IsRecoverable reports whether err is a dispatch condition that should be
// reported and skipped rather than end a read loop.
func IsRecoverable(err error) bool {
	var (
		unknownClass   *UnknownClassError
		unknownMethod  *UnknownMethodError
		notImplemented *MethodNotImplementedError
	)
	return errors.As(err, &unknownClass) ||
		errors.As(err, &unknownMethod) ||
		errors.As(err, &notImplemented)
}
