package schema

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Engine validates candidate records against a form schema. It never returns
// Go errors for invalid input; findings come back as a field→message map.
type Engine struct {
	registry *fieldtype.Registry
}

func NewEngine(registry *fieldtype.Registry) *Engine {
	return &Engine{registry: registry}
}

// Validate checks every visible field independently. A field reports at most
// one message: the first failing check in the fixed order required →
// length bounds → value bounds → pattern → type format. Fields whose
// depends_on condition is not met are skipped entirely.
func (e *Engine) Validate(schema FormSchema, data map[string]interface{}) map[string]string {
	errs := map[string]string{}
	for _, field := range schema.Fields {
		if !ShouldShow(field, data) {
			continue
		}
		if msg, ok := e.ValidateField(field, data[field.Name]); !ok {
			errs[field.Name] = msg
		}
	}
	return errs
}

// ValidateField runs the check chain for a single field. ok is false when a
// message is reported.
func (e *Engine) ValidateField(field Field, value interface{}) (msg string, ok bool) {
	if isEmpty(value) {
		if field.Validation.Required {
			return e.message(field.Type, "required", ""), false
		}
		return "", true
	}

	v := field.Validation
	if s, isString := value.(string); isString {
		if v.MinLength != nil && len(s) < *v.MinLength {
			return e.message(field.Type, "minLength", strconv.Itoa(*v.MinLength)), false
		}
		if v.MaxLength != nil && len(s) > *v.MaxLength {
			return e.message(field.Type, "maxLength", strconv.Itoa(*v.MaxLength)), false
		}
	}

	if v.Min != nil || v.Max != nil {
		n, numeric := toFloat(value)
		if numeric {
			if v.Min != nil && n < *v.Min {
				return e.message(field.Type, "min", formatFloat(*v.Min)), false
			}
			if v.Max != nil && n > *v.Max {
				return e.message(field.Type, "max", formatFloat(*v.Max)), false
			}
		}
	}

	if v.Pattern != "" {
		re, err := regexp.Compile(v.Pattern)
		if err == nil && !re.MatchString(toString(value)) {
			return e.message(field.Type, "pattern", v.Pattern), false
		}
	}

	switch field.Type {
	case fieldtype.Email:
		if !emailPattern.MatchString(toString(value)) {
			return e.message(field.Type, "email", ""), false
		}
	case fieldtype.Number:
		if _, numeric := toFloat(value); !numeric {
			return e.message(field.Type, "numeric", ""), false
		}
	case fieldtype.Text:
		if isURLOption(field.Options) {
			if u, err := url.Parse(toString(value)); err != nil || u.Scheme == "" || u.Host == "" {
				return e.message(field.Type, "url", ""), false
			}
		}
	}

	return "", true
}

func (e *Engine) message(t fieldtype.Type, rule, value string) string {
	return fieldtype.FillTemplate(e.registry.MessageTemplate(t, rule), value)
}

func isURLOption(options map[string]interface{}) bool {
	v, ok := options["format"].(string)
	return ok && v == "url"
}

// dependsOn operators, two-character tokens scanned before one-character so
// ">=" never tokenizes as ">" with a mangled literal.
var dependsOnOps = []string{"!=", ">=", "<=", "=", ">", "<"}

// ShouldShow evaluates a field's depends_on condition against the current
// record. Malformed expressions fail open: visibility problems must never
// hide data silently.
func ShouldShow(field Field, data map[string]interface{}) bool {
	expr := strings.TrimSpace(field.DependsOn)
	if expr == "" {
		return true
	}

	var op string
	var idx int = -1
	for _, candidate := range dependsOnOps {
		if i := strings.Index(expr, candidate); i > 0 {
			op, idx = candidate, i
			break
		}
	}
	if idx < 0 {
		return true
	}

	name := strings.TrimSpace(expr[:idx])
	literal := strings.TrimSpace(expr[idx+len(op):])
	if name == "" || literal == "" {
		return true
	}

	current := data[name]
	switch op {
	case "=":
		return looseEqual(current, literal)
	case "!=":
		return !looseEqual(current, literal)
	default:
		lhs, lok := toFloat(current)
		rhs, rok := toFloat(literal)
		if !lok || !rok {
			return false
		}
		switch op {
		case ">":
			return lhs > rhs
		case "<":
			return lhs < rhs
		case ">=":
			return lhs >= rhs
		case "<=":
			return lhs <= rhs
		}
	}
	return true
}

// looseEqual compares with type coercion: numeric when both sides parse as
// numbers, string comparison otherwise.
func looseEqual(value interface{}, literal string) bool {
	if lhs, lok := toFloat(value); lok {
		if rhs, rok := toFloat(literal); rok {
			return lhs == rhs
		}
	}
	return toString(value) == literal
}

func isEmpty(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	default:
		return false
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func toString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatFloat(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
