package amqp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry(testMethodInfos...)

	t.Run("KnownSlotsStartUnregistered", func(t *testing.T) {
		for _, info := range testMethodInfos {
			slot, ok := reg.Slot(info.Class, info.Method)
			require.True(t, ok, info.Name)
			assert.False(t, slot.Registered(), info.Name)
			assert.Equal(t, info, slot.Info)
		}
	})

	t.Run("Info", func(t *testing.T) {
		info, ok := reg.Info(50, 10)
		require.True(t, ok)
		assert.Equal(t, "queue.declare", info.Name)
		assert.True(t, info.Synchronous)

		_, ok = reg.Info(99, 1)
		assert.False(t, ok)
	})

	t.Run("HandleUnregistered", func(t *testing.T) {
		err := reg.Handle(nil, &queueDeclare{})
		var notImplemented *MethodNotImplementedError
		require.ErrorAs(t, err, &notImplemented)
		assert.Equal(t, uint16(50), notImplemented.Class)
		assert.Equal(t, uint16(10), notImplemented.Method)
		assert.Equal(t, "method queue.declare (50.10) not implemented", err.Error())
		assert.True(t, IsRecoverable(err))
	})

	t.Run("RegisterAndHandle", func(t *testing.T) {
		var got *queueDeclare
		reg.Register(50, 10, func(ch *Channel, m Method) error {
			got = m.(*queueDeclare)
			return nil
		})

		require.NoError(t, reg.Handle(nil, &queueDeclare{Queue: "q"}))
		require.NotNil(t, got)
		assert.Equal(t, "q", got.Queue)

		slot, _ := reg.Slot(50, 10)
		assert.True(t, slot.Registered())
	})

	t.Run("HandlerErrorPassesThrough", func(t *testing.T) {
		boom := errors.New("boom")
		reg.Register(50, 11, func(ch *Channel, m Method) error { return boom })

		err := reg.Handle(nil, &queueDeclareOk{})
		assert.ErrorIs(t, err, boom)
		assert.False(t, IsRecoverable(err))
	})

	t.Run("Unregister", func(t *testing.T) {
		reg.Register(50, 11, nil)
		slot, _ := reg.Slot(50, 11)
		assert.False(t, slot.Registered())
	})

	t.Run("RegisterUnknownMethod", func(t *testing.T) {
		called := false
		reg.Register(70, 1, func(ch *Channel, m Method) error {
			called = true
			return nil
		})
		slot, ok := reg.Slot(70, 1)
		require.True(t, ok)
		assert.True(t, slot.Registered())
		assert.False(t, called)
	})
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unknown class", &UnknownClassError{Class: 99}, true},
		{"unknown method", &UnknownMethodError{Class: 50, Method: 99}, true},
		{"not implemented", &MethodNotImplementedError{Class: 50, Method: 10, Name: "queue.declare"}, true},
		{"wrapped", fmt.Errorf("dispatch: %w", &UnknownClassError{Class: 1}), true},
		{"decode failure", ErrUnexpectedEOF, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRecoverable(tt.err))
		})
	}
}

func TestDispatchErrorMessages(t *testing.T) {
	assert.Equal(t, "unknown class 99", (&UnknownClassError{Class: 99}).Error())
	assert.Equal(t, "unknown method 7 in class 50", (&UnknownMethodError{Class: 50, Method: 7}).Error())
}
