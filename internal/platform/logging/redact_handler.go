package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// RedactedFields are attribute keys whose values never reach the log output.
var RedactedFields = []string{
	"authorization",
	"cookie",
	"password",
	"secret",
	"token",
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// jwtPattern needs 10+ characters per segment so version strings survive.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
)

// redactor builds the masq ReplaceAttr hook used by New.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(RedactedFields)+3)
	for _, name := range RedactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
	)
	return masq.New(opts...)
}
