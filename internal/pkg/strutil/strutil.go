// Package strutil converts query string values.
package strutil

import "strconv"

// ConvertToInt parses s and returns def when s is empty or malformed
func ConvertToInt(s string, def int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return value
}
