package tenderly

import (
	"strconv"
	"strings"
)

// HexToInt decodes a 0x-prefixed hex quantity into a decimal integer. Empty
// input yields nil so the corresponding request field serializes as null.
func HexToInt(hex string) *int64 {
	if hex == "" {
		return nil
	}

	v, err := strconv.ParseInt(strings.TrimPrefix(hex, "0x"), 16, 64)
	if err != nil {
		return nil
	}

	return &v
}
