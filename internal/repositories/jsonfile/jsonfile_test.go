package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoadMissingFileReturnsEmptyList(t *testing.T) {
	c := NewCollection[record](filepath.Join(t.TempDir(), "missing.json"))

	items, err := c.Load()
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	c := NewCollection[record](filepath.Join(t.TempDir(), "records.json"))

	want := []record{{ID: "1", Name: "uno"}, {ID: "2", Name: "dos"}}
	require.NoError(t, c.Save(want))

	got, err := c.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Docs", "records.json")
	c := NewCollection[record](path)

	require.NoError(t, c.Save([]record{{ID: "1"}}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSaveReplacesWholeFile(t *testing.T) {
	c := NewCollection[record](filepath.Join(t.TempDir(), "records.json"))

	require.NoError(t, c.Save([]record{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, c.Save([]record{{ID: "3"}}))

	got, err := c.Load()
	require.NoError(t, err)
	require.Equal(t, []record{{ID: "3"}}, got)
}

func TestLoadMalformedJSONFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewCollection[record](path).Load()
	require.Error(t, err)
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	c := NewCollection[record](path)

	require.NoError(t, c.Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(data))
}
