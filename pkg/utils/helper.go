package utils

import (
	"strconv"
	"strings"
)

// ParseLeadingInt extracts the leading integer part of a string, mirroring
// JavaScript parseInt: leading whitespace is skipped, an optional sign is
// honored, parsing stops at the first non-digit, and a string with no
// leading digits yields 0. Activity prices go through this when booking
// totals are computed, so the truncation semantics matter.
func ParseLeadingInt(value string) int {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0
	}

	i := 0
	if s[0] == '+' || s[0] == '-' {
		i = 1
	}

	end := i
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == i {
		return 0
	}

	result, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return result
}

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
