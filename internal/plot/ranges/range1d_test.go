package ranges

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange1dSetNotifiesOnce(t *testing.T) {
	r := NewRange1d(0, 10)

	var changes []Change
	r.Subscribe(func(c Change) { changes = append(changes, c) })

	r.Set(5, 15)

	require.Len(t, changes, 1)
	assert.Equal(t, 0.0, changes[0].OldStart)
	assert.Equal(t, 10.0, changes[0].OldEnd)
	assert.Equal(t, 5.0, changes[0].Start)
	assert.Equal(t, 15.0, changes[0].End)
	assert.Same(t, r, changes[0].Range)
}

func TestRange1dValuesVisibleToObserver(t *testing.T) {
	r := NewRange1d(0, 10)

	var seen Interval
	r.Subscribe(func(c Change) { seen = c.Range.Interval() })

	r.SetEnd(12)
	assert.Equal(t, Interval{Start: 0, End: 12}, seen)

	r.SetStart(2)
	assert.Equal(t, Interval{Start: 2, End: 12}, seen)
}

func TestRange1dNoChangeNoNotify(t *testing.T) {
	r := NewRange1d(1, 2)

	calls := 0
	r.Subscribe(func(Change) { calls++ })

	r.Set(1, 2)
	r.SetStart(1)
	assert.Equal(t, 0, calls)
}

func TestRange1dUnsubscribe(t *testing.T) {
	r := NewRange1d(0, 1)

	var order []string
	a := r.Subscribe(func(Change) { order = append(order, "a") })
	r.Subscribe(func(Change) { order = append(order, "b") })

	r.Set(0, 2)
	assert.Equal(t, []string{"a", "b"}, order)

	a.Unsubscribe()
	a.Unsubscribe()
	assert.Equal(t, 1, r.ObserverCount())

	order = nil
	r.Set(0, 3)
	assert.Equal(t, []string{"b"}, order)
}

func TestRange1dHasID(t *testing.T) {
	a := NewRange1d(0, 1)
	b := NewRange1d(0, 1)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestIntervalContains(t *testing.T) {
	i := Interval{Start: 0, End: 100}

	assert.True(t, i.Contains(0))
	assert.True(t, i.Contains(100))
	assert.False(t, i.Contains(-0.001))
	assert.False(t, i.Contains(100.5))
	assert.False(t, i.Contains(math.NaN()))
}

func TestIntervalPadAndUnion(t *testing.T) {
	assert.Equal(t, Interval{Start: -1, End: 11}, Interval{Start: 0, End: 10}.Pad(0.1))
	assert.Equal(t, Interval{Start: 4.5, End: 5.5}, Interval{Start: 5, End: 5}.Pad(0.5))
	assert.Equal(t, Interval{Start: -2, End: 10}, Interval{Start: 0, End: 10}.Union(Interval{Start: -2, End: 3}))
}
