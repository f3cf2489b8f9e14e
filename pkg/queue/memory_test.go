package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_Order(t *testing.T) {
	q := NewInMemoryQueue(4)
	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Enqueue(i))
	}

	assert.Equal(t, 3, q.Size())
	assert.Equal(t, 1, q.Dequeue())
	assert.Equal(t, []interface{}{2, 3}, q.ReadAllMessages())
	assert.Equal(t, 0, q.Size())
	assert.Nil(t, q.ReadAllMessages())
}

func TestInMemoryQueue_Full(t *testing.T) {
	q := NewInMemoryQueue(1)
	require.NoError(t, q.Enqueue("a"))

	assert.ErrorIs(t, q.Enqueue("b"), ErrQueueFull)

	q.ClearQueue()
	assert.NoError(t, q.Enqueue("c"))
}

func TestInMemoryQueue_ConcurrentProducers(t *testing.T) {
	q := NewInMemoryQueue(100)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				assert.NoError(t, q.Enqueue(j))
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.ReadAllMessages(), 100)
}
