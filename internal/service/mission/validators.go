package mission

import "strings"

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isValidDeliveryType(deliveryType string) bool {
	switch deliveryType {
	case "me", "tiers", "express":
		return true
	default:
		return false
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
