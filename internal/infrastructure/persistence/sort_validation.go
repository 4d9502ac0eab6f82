package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes orderDir to ASC or DESC, defaulting to DESC
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField returns sortField when it is whitelisted, defaultField otherwise.
// Column names end up in raw ORDER BY clauses, so nothing outside the whitelist passes.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// LogSortFields are the packetery_log columns a listing may sort by
var LogSortFields = map[string]bool{
	"date":     true,
	"action":   true,
	"status":   true,
	"order_id": true,
}
