package oauth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Now()

	state := EncodeState(userID, now)
	decoded, err := DecodeState(state, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, userID, decoded)
}

func TestDecodeStateExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	state := EncodeState(uuid.New(), now)

	_, err := DecodeState(state, now.Add(StateTTL+time.Second))
	assert.ErrorContains(t, err, "expired")
}

func TestDecodeStateMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state string
	}{
		{name: "not base64", state: "%%%"},
		{name: "missing parts", state: "aGVsbG8="},
		{name: "bad uuid", state: "bm90LWEtdXVpZDoxMjM0NTY6bm9uY2U="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeState(tt.state, time.Now())
			assert.Error(t, err)
		})
	}
}
