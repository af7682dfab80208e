package generator

import "github.com/ngodingskuyy/doctypes-go/pkg/naming"

// Identifiers is the canonical identifier set derived from a doctype name.
type Identifiers struct {
	ModelName      string
	TableName      string
	ModelVariable  string
	ControllerName string
	RequestName    string
	ResourceName   string
}

func DeriveIdentifiers(doctypeName string) Identifiers {
	model := naming.Pascal(doctypeName)
	return Identifiers{
		ModelName:      model,
		TableName:      naming.TableName(doctypeName),
		ModelVariable:  naming.Camel(doctypeName),
		ControllerName: model + "Controller",
		RequestName:    model + "Request",
		ResourceName:   model + "Resource",
	}
}
