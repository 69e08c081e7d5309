package canode

import (
	"encoding/hex"
	"fmt"
)

func decodeHex32(s string, out *[32]byte) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != 32 {
		return fmt.Errorf("canode: expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return nil
}

func hexEncode(b []byte) string {
	return hex.EncodeToString(b)
}
