package quickfind

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Request tokens are routing metadata, not credentials: a fixed two-field
// prefix followed by the originating client's identity. Nothing is stored
// server-side; every protocol step reconstructs its routing from the token.
const (
	tokenMarker    = "qf"
	tokenSeparator = "_"
)

// EncodeRequestToken mints a token of the form qf_<unix-ts>_<clientID>.
func EncodeRequestToken(clientID string) string {
	return tokenMarker + tokenSeparator + strconv.FormatInt(time.Now().Unix(), 10) + tokenSeparator + clientID
}

// DecodeRequestToken recovers the client identity from a token. The first two
// fields are fixed; everything after them is rejoined with the separator, so a
// client identifier that itself contains the separator round-trips verbatim.
func DecodeRequestToken(token string) (string, error) {
	parts := strings.Split(token, tokenSeparator)
	if len(parts) < 3 {
		return "", fmt.Errorf("token %q has too few fields: %w", token, ErrInvalidToken)
	}
	if parts[0] != tokenMarker {
		return "", fmt.Errorf("token %q has unknown marker: %w", token, ErrInvalidToken)
	}
	if _, err := strconv.ParseInt(parts[1], 10, 64); err != nil {
		return "", fmt.Errorf("token %q has non-numeric timestamp: %w", token, ErrInvalidToken)
	}
	clientID := strings.Join(parts[2:], tokenSeparator)
	if clientID == "" {
		return "", fmt.Errorf("token %q carries no client id: %w", token, ErrInvalidToken)
	}
	return clientID, nil
}
