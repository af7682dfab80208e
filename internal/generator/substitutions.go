package generator

import (
	"fmt"
	"strings"

	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"github.com/ngodingskuyy/doctypes-go/pkg/naming"
)

func fillableFields(fields []doctype.DoctypeField) string {
	var quoted []string
	for _, f := range fields {
		quoted = append(quoted, fmt.Sprintf("'%s'", f.Fieldname))
	}
	return strings.Join(quoted, ",\n        ")
}

func castFields(fields []doctype.DoctypeField) string {
	var casts []string
	for _, f := range fields {
		var cast string
		switch f.Fieldtype {
		case fieldtype.Checkbox:
			cast = "boolean"
		case fieldtype.Number:
			cast = "float"
		case fieldtype.Date:
			cast = "date"
		case fieldtype.Datetime:
			cast = "datetime"
		case fieldtype.JSON:
			cast = "array"
		default:
			continue
		}
		casts = append(casts, fmt.Sprintf("'%s' => '%s'", f.Fieldname, cast))
	}
	return strings.Join(casts, ",\n        ")
}

func scopes(fields []doctype.DoctypeField) string {
	var out []string
	for _, f := range fields {
		if !f.InStandardFilter {
			continue
		}
		scope := fmt.Sprintf(
			"public function scopeBy%s($query, $value)\n    {\n        return $query->where('%s', $value);\n    }",
			naming.Pascal(f.Fieldname), f.Fieldname)
		out = append(out, scope)
	}
	return strings.Join(out, "\n\n    ")
}

func filterLogic(fields []doctype.DoctypeField) string {
	var out []string
	for _, f := range fields {
		if !f.InStandardFilter {
			continue
		}
		clause := fmt.Sprintf(
			"if ($request->has('%s')) {\n            $query->where('%s', $request->get('%s'));\n        }",
			naming.Camel(f.Fieldname), f.Fieldname, naming.Camel(f.Fieldname))
		out = append(out, clause)
	}
	return strings.Join(out, "\n\n        ")
}

func validationRules(d *doctype.Doctype, fields []doctype.DoctypeField) string {
	table := naming.TableName(d.Name)
	var rules []string
	for _, f := range fields {
		var parts []string
		if f.Required {
			parts = append(parts, "required")
		} else {
			parts = append(parts, "nullable")
		}

		options := f.OptionsMap()
		switch f.Fieldtype {
		case fieldtype.Text, fieldtype.Textarea:
			parts = append(parts, "string")
			if max, ok := numericOption(options, "maxLength"); ok {
				parts = append(parts, fmt.Sprintf("max:%s", formatNumber(max)))
			}
		case fieldtype.Email:
			parts = append(parts, "email")
		case fieldtype.Number:
			parts = append(parts, "numeric")
			if min, ok := numericOption(options, "min"); ok {
				parts = append(parts, fmt.Sprintf("min:%s", formatNumber(min)))
			}
			if max, ok := numericOption(options, "max"); ok {
				parts = append(parts, fmt.Sprintf("max:%s", formatNumber(max)))
			}
		case fieldtype.Date, fieldtype.Datetime:
			parts = append(parts, "date")
		case fieldtype.Checkbox:
			parts = append(parts, "boolean")
		case fieldtype.Select:
			if choices := choiceList(options); len(choices) > 0 {
				parts = append(parts, "in:"+strings.Join(choices, ","))
			}
		case fieldtype.JSON:
			parts = append(parts, "array")
		}

		if f.Unique {
			parts = append(parts, fmt.Sprintf("unique:%s,%s", table, f.Fieldname))
		}

		rules = append(rules, fmt.Sprintf("'%s' => '%s'", f.Fieldname, strings.Join(parts, "|")))
	}
	return strings.Join(rules, ",\n            ")
}

func validationMessages(fields []doctype.DoctypeField) string {
	var msgs []string
	for _, f := range fields {
		if f.Required {
			msgs = append(msgs, fmt.Sprintf("'%s.required' => 'The %s field is required.'", f.Fieldname, f.Label))
		}
		if f.Unique {
			msgs = append(msgs, fmt.Sprintf("'%s.unique' => 'The %s has already been taken.'", f.Fieldname, f.Label))
		}
	}
	return strings.Join(msgs, ",\n            ")
}

func resourceFields(fields []doctype.DoctypeField) string {
	lines := []string{"'id' => $this->id"}
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("'%s' => $this->%s", f.Fieldname, f.Fieldname))
	}
	lines = append(lines,
		"'created_at' => $this->created_at",
		"'updated_at' => $this->updated_at")
	return strings.Join(lines, ",\n            ")
}

func migrationFields(fields []doctype.DoctypeField) string {
	var lines []string
	for _, f := range fields {
		lines = append(lines, migrationColumn(f))
	}
	return strings.Join(lines, "\n            ")
}

func migrationColumn(f doctype.DoctypeField) string {
	var def string
	switch f.Fieldtype {
	case fieldtype.Textarea:
		def = fmt.Sprintf("$table->text('%s')", f.Fieldname)
	case fieldtype.Number:
		def = fmt.Sprintf("$table->decimal('%s', 8, 2)", f.Fieldname)
	case fieldtype.Date:
		def = fmt.Sprintf("$table->date('%s')", f.Fieldname)
	case fieldtype.Datetime:
		def = fmt.Sprintf("$table->datetime('%s')", f.Fieldname)
	case fieldtype.Time:
		def = fmt.Sprintf("$table->time('%s')", f.Fieldname)
	case fieldtype.Checkbox:
		def = fmt.Sprintf("$table->boolean('%s')", f.Fieldname)
	case fieldtype.JSON:
		def = fmt.Sprintf("$table->json('%s')", f.Fieldname)
	default:
		// text, email, password, select, file, image
		def = fmt.Sprintf("$table->string('%s')", f.Fieldname)
	}

	if !f.Required {
		def += "->nullable()"
	}
	if f.Unique {
		def += "->unique()"
	}
	if f.DefaultValue != nil {
		def += fmt.Sprintf("->default('%s')", *f.DefaultValue)
	}
	return def + ";"
}

func numericOption(options map[string]interface{}, key string) (float64, bool) {
	if options == nil {
		return 0, false
	}
	switch v := options[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func choiceList(options map[string]interface{}) []string {
	if options == nil {
		return nil
	}
	raw, ok := options["options"].([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case map[string]interface{}:
			// label/value pair shape
			if val, ok := v["value"].(string); ok {
				out = append(out, val)
			}
		}
	}
	return out
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
