package scraper

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// DecodeCredentials decodes the opaque credential blob stored on a
// connection: base64-encoded JSON with the same fields an interactive sync
// supplies directly.
func DecodeCredentials(encoded string) (Credentials, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}

	return creds, nil
}
