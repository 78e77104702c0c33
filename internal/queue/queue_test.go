package queue_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Shaktikantpadhi/sharedqueue/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockWindow is how long a call must stay pending to be considered blocked.
const blockWindow = 50 * time.Millisecond

func Test_New_InvalidCapacity(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1} {
		q, err := queue.New[string](capacity)
		assert.ErrorIs(t, err, queue.ErrInvalidCapacity, "capacity %d", capacity)
		assert.Nil(t, q)
	}
}

func Test_New_Capacity(t *testing.T) {
	t.Parallel()

	q, err := queue.New[string](1)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Cap())
	assert.Equal(t, 0, q.Len())
}

func Test_Queue_FIFO_WrapAround(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q, err := queue.New[int](3)
	require.NoError(t, err)

	next := 0
	for round := 0; round < 5; round++ {
		for i := 0; i < 2; i++ {
			require.NoError(t, q.Enqueue(ctx, round*2+i))
		}
		for i := 0; i < 2; i++ {
			v, err := q.Dequeue(ctx)
			require.NoError(t, err)
			assert.Equal(t, next, v)
			next++
		}
	}
	assert.Equal(t, 0, q.Len())
}

func Test_Queue_BlocksWhenFull(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q, err := queue.New[string](2)
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(ctx, "a"))
	require.NoError(t, q.Enqueue(ctx, "b"))

	done := make(chan error, 1)
	go func() {
		done <- q.Enqueue(ctx, "c")
	}()

	select {
	case err := <-done:
		t.Fatalf("Enqueue on full queue returned early: %v", err)
	case <-time.After(blockWindow):
	}

	v, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pending Enqueue was not released by Dequeue")
	}

	for _, want := range []string{"b", "c"} {
		v, err := q.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func Test_Queue_SingleSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q, err := queue.New[string](1)
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(ctx, "x"))

	done := make(chan error, 1)
	go func() {
		done <- q.Enqueue(ctx, "y")
	}()

	select {
	case err := <-done:
		t.Fatalf("second Enqueue returned before Dequeue: %v", err)
	case <-time.After(blockWindow):
	}

	v, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	require.NoError(t, <-done)

	v, err = q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "y", v)
}

func Test_Queue_BlocksWhenEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q, err := queue.New[int](4)
	require.NoError(t, err)

	got := make(chan int, 1)
	go func() {
		v, err := q.Dequeue(ctx)
		if err == nil {
			got <- v
		}
	}()

	select {
	case v := <-got:
		t.Fatalf("Dequeue on empty queue returned %d", v)
	case <-time.After(blockWindow):
	}

	require.NoError(t, q.Enqueue(ctx, 7))

	select {
	case v := <-got:
		assert.Equal(t, 7, v)
	case <-time.After(time.Second):
		t.Fatal("pending Dequeue was not released by Enqueue")
	}
}

func Test_Queue_DequeueCancelled(t *testing.T) {
	t.Parallel()

	q, err := queue.New[string](2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := q.Dequeue(ctx)
		done <- err
	}()

	time.Sleep(blockWindow)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, queue.ErrCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled Dequeue did not return")
	}
	assert.Equal(t, 0, q.Len())

	bg := context.Background()
	require.NoError(t, q.Enqueue(bg, "after"))
	v, err := q.Dequeue(bg)
	require.NoError(t, err)
	assert.Equal(t, "after", v)
}

func Test_Queue_EnqueueCancelled(t *testing.T) {
	t.Parallel()

	bg := context.Background()
	q, err := queue.New[string](1)
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(bg, "kept"))

	ctx, cancel := context.WithTimeout(bg, blockWindow)
	defer cancel()

	err = q.Enqueue(ctx, "dropped")
	assert.ErrorIs(t, err, queue.ErrCancelled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, q.Len())

	v, err := q.Dequeue(bg)
	require.NoError(t, err)
	assert.Equal(t, "kept", v)
	assert.Equal(t, 0, q.Len())
}

func Test_Queue_DoneContextDoesNotBlockReadyCall(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q, err := queue.New[int](1)
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(ctx, 1))
	v, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = q.Dequeue(ctx)
	assert.True(t, errors.Is(err, queue.ErrCancelled))
}

func Test_Queue_CancelOneOfManyWaiters(t *testing.T) {
	t.Parallel()

	bg := context.Background()
	q, err := queue.New[int](1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(bg)
	cancelled := make(chan error, 1)
	go func() {
		_, err := q.Dequeue(ctx)
		cancelled <- err
	}()

	got := make(chan int, 1)
	go func() {
		v, err := q.Dequeue(bg)
		if err == nil {
			got <- v
		}
	}()

	time.Sleep(blockWindow)
	cancel()
	assert.ErrorIs(t, <-cancelled, queue.ErrCancelled)

	require.NoError(t, q.Enqueue(bg, 42))
	select {
	case v := <-got:
		assert.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("remaining waiter was not woken")
	}
}

func Test_Queue_Conservation(t *testing.T) {
	t.Parallel()

	const (
		items     = 2000
		consumers = 8
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q, err := queue.New[int](10)
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		seen = make(map[int]int, items)
		wg   sync.WaitGroup
	)
	orderViolations := make(chan string, consumers)

	for c := 0; c < consumers; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			last := -1
			for {
				v, err := q.Dequeue(ctx)
				if err != nil {
					return
				}
				// FIFO removal implies every consumer sees an increasing subsequence.
				if v <= last {
					orderViolations <- fmt.Sprintf("got %d after %d", v, last)
					cancel()
					return
				}
				last = v

				mu.Lock()
				seen[v]++
				n := len(seen)
				mu.Unlock()
				if n == items {
					cancel()
				}
			}
		}()
	}

	for i := 0; i < items; i++ {
		if err := q.Enqueue(ctx, i); err != nil {
			break
		}
	}

	wg.Wait()
	close(orderViolations)
	for v := range orderViolations {
		t.Error(v)
	}

	require.Len(t, seen, items)
	for i := 0; i < items; i++ {
		assert.Equal(t, 1, seen[i], "item %d", i)
	}
	assert.Equal(t, 0, q.Len())
}

func Test_Queue_LenWithinBounds(t *testing.T) {
	t.Parallel()

	const capacity = 3

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q, err := queue.New[int](capacity)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if err := q.Enqueue(ctx, i); err != nil {
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if _, err := q.Dequeue(ctx); err != nil {
				return
			}
		}
	}()

	stop := make(chan struct{})
	go func() {
		wg.Wait()
		close(stop)
	}()

	for {
		select {
		case <-stop:
			assert.Equal(t, 0, q.Len())
			return
		default:
			n := q.Len()
			if n < 0 || n > capacity {
				t.Fatalf("Len() = %d, want within [0, %d]", n, capacity)
			}
		}
	}
}

func Test_Queue_Independent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, err := queue.New[string](1)
	require.NoError(t, err)
	b, err := queue.New[string](1)
	require.NoError(t, err)

	require.NoError(t, a.Enqueue(ctx, "a"))
	require.NoError(t, b.Enqueue(ctx, "b"))

	v, err := b.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}
