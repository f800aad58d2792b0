package passid

import (
	"net/url"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate_Format(t *testing.T) {
	gen := NewGenerator()

	id, err := gen.Generate()
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, id, url.PathEscape(id), "identifier must be URL safe")
}

func TestGenerator_Generate_Distinct(t *testing.T) {
	const total = 10000

	gen := NewGenerator()
	seen := make(map[string]struct{}, total)

	for range total {
		id, err := gen.Generate()
		require.NoError(t, err)

		_, dup := seen[id]
		require.False(t, dup, "duplicate identifier %s", id)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, total)
}

func TestGenerator_Generate_ConcurrentDistinct(t *testing.T) {
	const (
		workers   = 8
		perWorker = 1000
	)

	gen := NewGenerator()

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id, err := gen.Generate()
				assert.NoError(t, err)

				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
