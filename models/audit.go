package models

import "strings"

// Audit source values accepted on write operations.
const (
	SourceManual = "manual"
	SourceDevice = "device"
	SourceAPI    = "api"
)

// AuditSources lists every accepted audit source.
var AuditSources = []string{SourceManual, SourceDevice, SourceAPI}

// ResolveAuditSource normalizes a client-supplied source value. An empty value
// resolves to the fallback; an unknown value resolves to "" and must be
// rejected by the caller.
func ResolveAuditSource(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, source := range AuditSources {
		if source == normalized {
			return normalized
		}
	}
	return ""
}
