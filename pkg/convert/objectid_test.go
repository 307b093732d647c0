package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectIDToDate(t *testing.T) {
	got, err := ObjectIDToDate("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Unix(0x507f1f77, 0)))
	assert.Equal(t, 2012, got.UTC().Year())

	_, err = ObjectIDToDate("abc")
	assert.ErrorIs(t, err, ErrInvalidObjectID)

	_, err = ObjectIDToDate("zzzzzzzz0000")
	assert.ErrorIs(t, err, ErrInvalidObjectID)
}
