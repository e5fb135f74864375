package checkin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_ConsumeOnce(t *testing.T) {
	repository := NewInMemoryRepository()
	require.NoError(t, repository.CreateToken("t1", "42", time.Minute))

	eventID, err := repository.ConsumeToken("t1")

	require.NoError(t, err)
	assert.Equal(t, "42", eventID)

	_, err = repository.ConsumeToken("t1")
	assert.ErrorIs(t, err, ErrTokenUsed)
}

func TestInMemoryRepository_UnknownToken(t *testing.T) {
	repository := NewInMemoryRepository()

	_, err := repository.ConsumeToken("t1")

	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestInMemoryRepository_ExpiredToken(t *testing.T) {
	repository := NewInMemoryRepository()
	require.NoError(t, repository.CreateToken("t1", "42", -time.Second))

	_, err := repository.ConsumeToken("t1")

	assert.ErrorIs(t, err, ErrTokenExpired)

	// the record is kept for inspection, expiry wins over used
	_, err = repository.ConsumeToken("t1")
	assert.ErrorIs(t, err, ErrTokenExpired)
}
