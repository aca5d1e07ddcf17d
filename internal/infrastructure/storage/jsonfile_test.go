// internal/infrastructure/storage/jsonfile_test.go
package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	file := NewJSONFile(path)

	in := map[string]int{"7501234567890": 10, "7509876543210": 3}
	require.NoError(t, file.Save(in))

	out := map[string]int{}
	require.NoError(t, file.Load(&out))
	assert.Equal(t, in, out)
}

func TestJSONFileLoadMissingFile(t *testing.T) {
	file := NewJSONFile(filepath.Join(t.TempDir(), "does-not-exist.json"))

	out := map[string]int{"seed": 1}
	require.NoError(t, file.Load(&out))
	// Missing file leaves the destination untouched.
	assert.Equal(t, map[string]int{"seed": 1}, out)
}

func TestJSONFileSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "sales.json")
	file := NewJSONFile(path)

	require.NoError(t, file.Save([]string{"a", "b"}))

	var out []string
	require.NoError(t, file.Load(&out))
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestJSONFileLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, NewJSONFile(path).Save("valid"))

	var wrongType []int
	err := NewJSONFile(path).Load(&wrongType)
	assert.Error(t, err)
}
