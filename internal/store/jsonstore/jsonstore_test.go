package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/reminders/internal/store"
	"github.com/idilsaglam/reminders/internal/store/storetest"
)

var _ store.NoteStore = (*Store)(nil)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "nested", DefaultFileName))
}

func TestContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.NoteStore { return newTestStore(t) })
}

func TestMissingFileReadsAsEmpty(t *testing.T) {
	s := newTestStore(t)
	v, err := s.Get("Door Lock", "")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	_, err = os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err), "a read must not create the file")
}

func TestValuesSurviveReopen(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set("Wifi Password", "hunter2"))

	again := New(s.Path())
	v, err := again.Get("Wifi Password", "")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", v)
}

func TestForeignNamespacesArePreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"Other":{"k":"v"},"Reminders":{"UPI Pin":"0000"}}`), 0o600))

	s := New(path)
	require.NoError(t, s.Set("Bike Lock", "1-2-3"))
	require.NoError(t, s.Remove("UPI Pin"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Other":{"k":"v"},"Reminders":{"Bike Lock":"1-2-3"}}`, string(b))
}

func TestCorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := New(path).Get("UPI Pin", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json unmarshal")
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, DefaultFileName))
	require.NoError(t, s.Set("Metro Card", "42"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultFileName, entries[0].Name())
}
