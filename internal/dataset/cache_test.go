package dataset

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extraRow = "08/01/2025,Mercredi,150,30,20.0,180,10\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "donnees.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCache_ReadThrough(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	cache := NewCache()

	records, err := cache.Records(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// The source changes on disk but the cache keeps serving the snapshot
	// until an explicit reload.
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV+extraRow), 0o644))

	records, err = cache.Records(path)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	records, err = cache.Reload(path)
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestCache_ErrorsNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.csv")
	cache := NewCache()

	_, err := cache.Records(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))

	// The source shows up later; the next read succeeds.
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	records, err := cache.Records(path)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestCache_ConcurrentReads(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	cache := NewCache()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := cache.Records(path)
			assert.NoError(t, err)
			assert.Len(t, records, 3)
		}()
	}
	wg.Wait()
}
