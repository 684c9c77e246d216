// Package storetest holds the behaviour every NoteStore backend must share.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/reminders/internal/apperr"
	"github.com/idilsaglam/reminders/internal/store"
)

// Factory returns a fresh, empty store for one subtest.
type Factory func(t *testing.T) store.NoteStore

// Run exercises the get/set/remove contract against a backend.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("absent key returns default", func(t *testing.T) {
		s := newStore(t)
		v, err := s.Get("Door Lock", "X")
		require.NoError(t, err)
		assert.Equal(t, "X", v)
	})

	t.Run("last write wins", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set("UPI Pin", "1111"))
		require.NoError(t, s.Set("UPI Pin", "2222"))
		v, err := s.Get("UPI Pin", "X")
		require.NoError(t, err)
		assert.Equal(t, "2222", v)
	})

	t.Run("set is idempotent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set("Bike Lock", "4-2-7"))
		require.NoError(t, s.Set("Bike Lock", "4-2-7"))
		v, err := s.Get("Bike Lock", "")
		require.NoError(t, err)
		assert.Equal(t, "4-2-7", v)
	})

	t.Run("round trip", func(t *testing.T) {
		s := newStore(t)
		for _, in := range []string{"", "plain", "multi\nline", "ünïcødé 🔑", `quote " and \ slash`} {
			require.NoError(t, s.Set("Metro Card", in))
			v, err := s.Get("Metro Card", "X")
			require.NoError(t, err)
			assert.Equal(t, in, v)
		}
	})

	t.Run("empty string is stored, not absent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set("Student ID", ""))
		v, err := s.Get("Student ID", "X")
		require.NoError(t, err)
		assert.Equal(t, "", v)
	})

	t.Run("remove restores default", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set("Roll NO.", "12345"))
		require.NoError(t, s.Remove("Roll NO."))
		v, err := s.Get("Roll NO.", "X")
		require.NoError(t, err)
		assert.Equal(t, "X", v)
	})

	t.Run("remove absent key", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Remove("Wifi Password"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set("Door Lock", "a"))
		require.NoError(t, s.Set("Phone Password", "b"))
		require.NoError(t, s.Remove("Door Lock"))
		v, err := s.Get("Phone Password", "")
		require.NoError(t, err)
		assert.Equal(t, "b", v)
	})

	t.Run("invalid utf-8 is rejected and keeps the old value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set("UPI Pin", "4242"))
		err := s.Set("UPI Pin", "pin\xff\xfe42")
		require.ErrorIs(t, err, apperr.ErrInvalidText)
		v, err := s.Get("UPI Pin", "X")
		require.NoError(t, err)
		assert.Equal(t, "4242", v)

		require.ErrorIs(t, s.Set("Bike Lock", "\xc3"), apperr.ErrInvalidText)
		v, err = s.Get("Bike Lock", "X")
		require.NoError(t, err)
		assert.Equal(t, "X", v)
	})
}
