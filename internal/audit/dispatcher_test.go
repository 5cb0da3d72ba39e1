package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	events chan Event
}

func (s *captureSink) Log(userID *uint, action, entity string, entityID *uint, metadata any) error {
	s.events <- Event{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metadata,
	}
	return nil
}

func TestDispatcher_DeliversEventToSink(t *testing.T) {
	sink := &captureSink{events: make(chan Event, 1)}
	d := NewDispatcher(sink)

	userID := uint(1)
	entityID := uint(42)

	d.Dispatch(Event{
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointments",
		EntityID: &entityID,
		Metadata: map[string]any{"status": "programada"},
	})

	select {
	case got := <-sink.events:
		require.NotNil(t, got.UserID)
		assert.Equal(t, uint(1), *got.UserID)
		assert.Equal(t, "appointment_created", got.Action)
		assert.Equal(t, "appointments", got.Entity)
		require.NotNil(t, got.EntityID)
		assert.Equal(t, uint(42), *got.EntityID)
	case <-time.After(time.Second):
		t.Fatal("event never reached the sink")
	}
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	sink := &captureSink{events: make(chan Event, 10)}
	d := NewDispatcher(sink)

	for _, action := range []string{"a", "b", "c"} {
		d.Dispatch(Event{Action: action})
	}

	for _, want := range []string{"a", "b", "c"} {
		select {
		case got := <-sink.events:
			assert.Equal(t, want, got.Action)
		case <-time.After(time.Second):
			t.Fatal("event never reached the sink")
		}
	}
}
