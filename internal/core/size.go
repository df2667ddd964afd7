package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const sizeUnits = "KMGTPE"

// FormatSize converts bytes to a human-readable string.
func FormatSize(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}

// ParseSize parses a byte size with an optional binary unit suffix, e.g.
// "512", "64K", "10MB" or "1GiB".
func ParseSize(s string) (int64, error) {
	num := strings.TrimSpace(s)
	num = strings.TrimSuffix(num, "iB")
	num = strings.TrimSuffix(num, "B")

	mult := int64(1)
	if num != "" {
		if i := strings.IndexByte(sizeUnits, upper(num[len(num)-1])); i >= 0 {
			num = num[:len(num)-1]
			for range i + 1 {
				mult *= 1024
			}
		}
	}

	n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	if n > 0 && mult > 1 && n > (1<<63-1)/mult {
		return 0, fmt.Errorf("size %q is too large", s)
	}
	return n * mult, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
