package providers

import (
	"fmt"
	"strings"
)

// NormalizeName returns a lower-cased provider name, deriving from the instance when not explicitly configured.
func NormalizeName(raw string, provider ScoreProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
