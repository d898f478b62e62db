package oauth

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StateTTL bounds how long an authorization flow may sit between the
// redirect out and the callback in.
const StateTTL = 10 * time.Minute

// EncodeState packs the user id, issue time, and a nonce into the
// OAuth state parameter so the callback can recover who initiated the
// flow without server-side session storage.
func EncodeState(userID uuid.UUID, now time.Time) string {
	raw := fmt.Sprintf("%s:%d:%s", userID, now.Unix(), uuid.NewString())
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// DecodeState reverses EncodeState and rejects malformed or expired
// states.
func DecodeState(state string, now time.Time) (uuid.UUID, error) {
	raw, err := base64.URLEncoding.DecodeString(state)
	if err != nil {
		return uuid.Nil, fmt.Errorf("decoding state: %w", err)
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return uuid.Nil, fmt.Errorf("malformed state")
	}

	userID, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing state user id: %w", err)
	}

	issued, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing state timestamp: %w", err)
	}
	if now.Sub(time.Unix(issued, 0)) > StateTTL {
		return uuid.Nil, fmt.Errorf("state expired")
	}

	return userID, nil
}
