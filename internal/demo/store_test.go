package demo

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStoreNotifiesSubscribersInOrder(t *testing.T) {
	t.Parallel()

	store := NewStore(testSettings(), mountTime)
	var got []string
	store.Subscribe(func(a Action, s State) { got = append(got, "a:"+a.Name()) })
	unsub := store.Subscribe(func(a Action, s State) { got = append(got, "b:"+a.Name()) })

	store.Dispatch(Toggle{})
	unsub()
	store.Dispatch(Press{})

	require.Equal(t, []string{"a:toggle", "b:toggle", "a:press"}, got)
}

func TestStoreSubscriberSeesNextState(t *testing.T) {
	t.Parallel()

	store := NewStore(testSettings(), mountTime)
	var seen State
	store.Subscribe(func(_ Action, s State) { seen = s })
	store.Dispatch(SelectOption{Value: "TWICE"})
	require.Equal(t, "TWICE", seen.SelectedOption)
	require.Equal(t, seen, store.State())
}

func TestStoreResetInvalidatesPendingTick(t *testing.T) {
	t.Parallel()

	store := NewStore(testSettings(), mountTime)
	effects := store.Dispatch(SimulateProgress{})
	require.Len(t, effects, 1)
	tick := effects[0].(Schedule).Tick

	store.Dispatch(Toggle{})
	store.Reset(mountTime.Add(48 * time.Hour))
	s := store.State()
	require.False(t, s.ToggleEnabled)
	require.False(t, s.ProgressPending)
	require.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), s.SelectedDate)

	store.Dispatch(tick)
	require.Zero(t, store.State().ProgressPercent)
}

func TestStoreConcurrentDispatch(t *testing.T) {
	t.Parallel()

	store := NewStore(testSettings(), mountTime)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(Toggle{})
		}()
	}
	wg.Wait()
	require.False(t, store.State().ToggleEnabled)
}
