package events

import (
	"testing"

	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue[int]()
	assert.Nil(t, q.Drain())

	for i := 1; i <= 3; i++ {
		q.Push(i)
	}
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{1, 2, 3}, q.Drain())
	assert.Equal(t, 0, q.Len())
}

func TestQueuePushDuringDrain(t *testing.T) {
	q := NewQueue[string]()
	q.Push("a")
	q.Push("b")

	batch := q.Drain()
	for range batch {
		q.Push("late")
	}
	assert.Equal(t, []string{"a", "b"}, batch, "drained slice must not see later pushes")
	assert.Equal(t, []string{"late", "late"}, q.Drain())
}

func TestQueueClear(t *testing.T) {
	q := NewQueue[KeyEvent]()
	q.Push(KeyEvent{Key: "Space", State: KeyReleased})
	q.Clear()
	assert.Equal(t, 0, q.Len())
}

func TestContactOther(t *testing.T) {
	e := ContactEvent{Kind: ContactStarted, A: ecs.EntityID(7), B: ecs.EntityID(9)}

	other, ok := e.Other(7)
	assert.True(t, ok)
	assert.Equal(t, ecs.EntityID(9), other)

	other, ok = e.Other(9)
	assert.True(t, ok)
	assert.Equal(t, ecs.EntityID(7), other)

	_, ok = e.Other(3)
	assert.False(t, ok)
}
