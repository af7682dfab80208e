package naming

import (
	"regexp"
	"strings"

	"github.com/jinzhu/inflection"
)

var identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// IsValidIdentifier reports whether s is usable as a doctype or field name.
func IsValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// Snake converts a name like "SalesInvoice" or "sales invoice" to "sales_invoice".
func Snake(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '_':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
			prevLower = false
		case r >= 'A' && r <= 'Z':
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
		}
	}
	return strings.Trim(b.String(), "_")
}

// Pascal converts "sales_invoice" to "SalesInvoice".
func Pascal(s string) string {
	parts := strings.FieldsFunc(Snake(s), func(r rune) bool { return r == '_' })
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// Camel converts "sales_invoice" to "salesInvoice".
func Camel(s string) string {
	p := Pascal(s)
	if p == "" {
		return ""
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// TableName resolves the conventional table for a doctype: snake_case plural.
func TableName(doctypeName string) string {
	return inflection.Plural(Snake(doctypeName))
}
