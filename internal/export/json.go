package export

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"receivecopy/internal/domain/receive"
)

// JSON выгружает весь список с отступом в два пробела.
func JSON(records []receive.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal receives: %w", err)
	}
	return data, nil
}

// ETag - сильный ETag выгрузки (BLAKE2b-256)
func ETag(data []byte) string {
	sum := blake2b.Sum256(data)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
