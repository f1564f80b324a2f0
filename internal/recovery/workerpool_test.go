package recovery

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:           "Executes every task",
			numTasks:       5,
			numWorkers:     2,
			expectedErrors: 0,
		},
		{
			name:           "Task errors do not stop the workers",
			numTasks:       4,
			numWorkers:     2,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)
			defer wp.Close()

			var mu sync.Mutex
			var executed int
			var failed int
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				task := func(i int) Task {
					return func() error {
						defer wg.Done()
						mu.Lock()
						defer mu.Unlock()
						if i == tt.numTasks-1 && tt.expectedErrors > 0 {
							failed++
							return assert.AnError
						}
						executed++
						return nil
					}
				}(i)

				err := wp.AddTask(context.Background(), task)
				require.NoError(t, err)
			}

			wg.Wait()

			assert.Equal(t, tt.numTasks-tt.expectedErrors, executed)
			assert.Equal(t, tt.expectedErrors, failed)
		})
	}
}

func TestWorkerPoolCanceledContext(t *testing.T) {
	wp := &WorkerPool{pool: make(chan Task)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
