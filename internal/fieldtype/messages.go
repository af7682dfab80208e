package fieldtype

import "strings"

// GenericMessage is returned for any (type, rule) pair without a template.
// A deliberate fallback, not an error.
const GenericMessage = "Invalid value"

var commonMessages = map[string]string{
	"required":  "This field is required",
	"minLength": "Must be at least {value} characters",
	"maxLength": "Must be at most {value} characters",
	"pattern":   "Value does not match the expected format",
}

var typeMessages = map[Type]map[string]string{
	Number: {
		"min":     "Must be at least {value}",
		"max":     "Must be at most {value}",
		"numeric": "Must be a number",
	},
	Email: {
		"email": "Must be a valid email address",
	},
	Select: {
		"in": "Must be one of {value}",
	},
	Text: {
		"url": "Must be a valid URL",
	},
}

// MessageTemplate resolves the human-readable message template for a
// validation rule. The template carries a single {value} placeholder.
func (r *Registry) MessageTemplate(t Type, rule string) string {
	if byType, ok := typeMessages[t]; ok {
		if msg, ok := byType[rule]; ok {
			return msg
		}
	}
	if msg, ok := commonMessages[rule]; ok {
		return msg
	}
	return GenericMessage
}

// FillTemplate substitutes the {value} placeholder in a message template.
func FillTemplate(template, value string) string {
	return strings.ReplaceAll(template, "{value}", value)
}
