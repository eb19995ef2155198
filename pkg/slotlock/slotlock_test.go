package slotlock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestKey(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-09-15T10:00", Key(date, types.TimeString("10:00")))
}

func TestLockManager_SerializesSameKey(t *testing.T) {
	m := NewLockManager()

	var (
		mu      sync.Mutex
		holders int
		maxSeen int
	)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release := m.Acquire("2026-09-15T10:00")
			defer release()

			mu.Lock()
			holders++
			if holders > maxSeen {
				maxSeen = holders
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			holders--
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Под одним ключом блокировку держит максимум одна горутина
	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, m.Len())
}

func TestLockManager_IndependentKeys(t *testing.T) {
	m := NewLockManager()

	release1 := m.Acquire("2026-09-15T10:00")
	defer release1()

	// Захват другого ключа не блокируется
	done := make(chan struct{})
	go func() {
		release2 := m.Acquire("2026-09-15T10:30")
		release2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("acquire of an independent key blocked")
	}
}

func TestLockManager_EntriesRemovedAfterRelease(t *testing.T) {
	m := NewLockManager()

	release := m.Acquire("2026-09-15T10:00")
	require.Equal(t, 1, m.Len())

	release()
	assert.Equal(t, 0, m.Len())

	// Повторный вызов release безопасен
	release()
	assert.Equal(t, 0, m.Len())
}
