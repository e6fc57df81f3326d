package tui

import (
	"errors"
	"strconv"
	"strings"
)

// parseAnswer validates a typed answer: a positive whole number,
// commas allowed.
func parseAnswer(input string) (uint64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, errors.New("please enter a number")
	}
	cleaned := strings.ReplaceAll(trimmed, ",", "")
	value, err := strconv.ParseUint(cleaned, 10, 64)
	if err != nil {
		switch {
		case strings.Contains(cleaned, "."):
			return 0, errors.New("please enter a whole number (no decimals)")
		case strings.HasPrefix(cleaned, "-"):
			return 0, errors.New("please enter a positive number")
		default:
			return 0, errors.New("please enter a valid number")
		}
	}
	if value == 0 {
		return 0, errors.New("please enter a positive number")
	}
	return value, nil
}
