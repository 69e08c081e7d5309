// Package tokenstore persists a Token to a JSON file, grounded in the
// original wallet/token_storage.py's save_token/load_token/delete_token.
package tokenstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/luxfi/bekd/internal/token"
)

// DefaultPath mirrors the original's TOKEN_FILE default.
const DefaultPath = ".token_store.json"

// Save writes tok to path as JSON, creating or truncating the file.
func Save(path string, tok *token.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("tokenstore: marshaling token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("tokenstore: writing %s: %w", path, err)
	}
	return nil
}

// Load reads and parses a token previously written by Save.
func Load(path string) (*token.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tokenstore: reading %s: %w", path, err)
	}
	var tok token.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("tokenstore: parsing %s: %w", path, err)
	}
	return &tok, nil
}

// Delete removes the token file at path, if present.
func Delete(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("tokenstore: deleting %s: %w", path, err)
	}
	return nil
}
