package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as attributes for the debug "request
// headers" line, in name order. Credential headers (logging.SensitiveHeaders)
// keep their name but lose their value; repeated values are comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
