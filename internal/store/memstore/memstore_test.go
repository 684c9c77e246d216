package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/reminders/internal/store"
	"github.com/idilsaglam/reminders/internal/store/storetest"
)

var _ store.NoteStore = (*Store)(nil)

func TestContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.NoteStore { return New() })
}

func TestHasDistinguishesEmptyFromAbsent(t *testing.T) {
	s := Seed(map[string]string{"UPI Pin": ""})
	assert.True(t, s.Has("UPI Pin"))
	assert.False(t, s.Has("Bike Lock"))

	require.NoError(t, s.Remove("UPI Pin"))
	assert.False(t, s.Has("UPI Pin"))
	assert.Equal(t, 0, s.Len())
}
