package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"branch-ledger/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, fields int) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "records.txt"), fields)
}

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t, 2)

	rows, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t, 3)

	in := [][]string{
		{"A1", "Alice", "100.00"},
		{"A2", "Bob", "50.00"},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_SaveLeavesNoTempFile(t *testing.T) {
	s := newTestStore(t, 2)
	require.NoError(t, s.Save([][]string{{"A1", "x"}}))

	_, err := os.Stat(s.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestStore_SaveOverwritesPreviousContents(t *testing.T) {
	s := newTestStore(t, 2)
	require.NoError(t, s.Save([][]string{{"A1", "x"}, {"A2", "y"}}))
	require.NoError(t, s.Save([][]string{{"A3", "z"}}))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A3", "z"}}, out)
}

func TestStore_AppendCreatesAndExtends(t *testing.T) {
	s := newTestStore(t, 2)
	require.NoError(t, s.Append([]string{"A1", "first"}))
	require.NoError(t, s.Append([]string{"A2", "second"}))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A1", "first"}, {"A2", "second"}}, out)
}

func TestStore_GreedyLastFieldKeepsEmbeddedSeparators(t *testing.T) {
	s := newTestStore(t, 2)
	require.NoError(t, s.Append([]string{"A1", "Paid $10.00 to Power, Light & Co"}))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Paid $10.00 to Power, Light & Co", out[0][1])
}

func TestStore_LoadMalformedRowFails(t *testing.T) {
	s := newTestStore(t, 3)
	require.NoError(t, os.WriteFile(s.Path(), []byte("A1,Alice,100.00\nA2,Bob\n"), 0644))

	_, err := s.Load()
	require.Error(t, err)
	assert.Equal(t, "STORE_001", apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "row 2")
}

func TestStore_ScanSkipsMalformedRows(t *testing.T) {
	s := newTestStore(t, 3)
	require.NoError(t, os.WriteFile(s.Path(), []byte("A1,Alice,100.00\ngarbage\nA2,Bob,50.00\n"), 0644))

	rows, skipped, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, [][]string{{"A1", "Alice", "100.00"}, {"A2", "Bob", "50.00"}}, rows)
}

func TestStore_LoadSkipsBlankLines(t *testing.T) {
	s := newTestStore(t, 2)
	require.NoError(t, os.WriteFile(s.Path(), []byte("A1,x\n\n\nA2,y\n"), 0644))

	rows, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
