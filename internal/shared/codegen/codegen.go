// Package codegen suggests the next "{prefix}-{NNN}" code from existing codes.
package codegen

import (
	"fmt"
	"strconv"
	"strings"
)

// Next returns prefix-NNN where NNN is one more than the largest numeric
// suffix among existing codes sharing the prefix. Codes with another prefix
// or a non-numeric suffix are ignored.
func Next(prefix string, existing []string) string {
	head := prefix + "-"
	highest := 0
	for _, code := range existing {
		if !strings.HasPrefix(code, head) {
			continue
		}
		n, err := strconv.Atoi(code[len(head):])
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, highest+1)
}

// LikePattern is the SQL LIKE pattern that selects candidate codes for prefix.
// Wildcards inside prefix may over-match; Next filters those out.
func LikePattern(prefix string) string {
	return prefix + "-%"
}
