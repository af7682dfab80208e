package doctype

type FieldInputDTO struct {
	Fieldname        string                 `json:"fieldname" binding:"required"`
	Label            string                 `json:"label"`
	Fieldtype        string                 `json:"fieldtype" binding:"required"`
	Options          map[string]interface{} `json:"options"`
	Required         bool                   `json:"required"`
	Unique           bool                   `json:"unique"`
	InListView       bool                   `json:"in_list_view"`
	InStandardFilter bool                   `json:"in_standard_filter"`
	ReadOnly         bool                   `json:"read_only"`
	Hidden           bool                   `json:"hidden"`
	Description      string                 `json:"description"`
	DefaultValue     *string                `json:"default_value"`
	SortOrder        int                    `json:"sort_order"`
	DependsOn        string                 `json:"depends_on"`
}

type CreateDoctypeDTO struct {
	Name        string                 `json:"name" binding:"required"`
	Label       string                 `json:"label" binding:"required"`
	Description string                 `json:"description"`
	Fields      []FieldInputDTO        `json:"fields"`
	Settings    map[string]interface{} `json:"settings"`
	IsActive    *bool                  `json:"is_active"`
	Icon        string                 `json:"icon"`
	Color       string                 `json:"color"`
}

type UpdateDoctypeDTO struct {
	Label       *string                `json:"label"`
	Description *string                `json:"description"`
	Fields      []FieldInputDTO        `json:"fields"`
	Settings    map[string]interface{} `json:"settings"`
	IsActive    *bool                  `json:"is_active"`
	Icon        *string                `json:"icon"`
	Color       *string                `json:"color"`
}

type UpdateFieldDTO struct {
	Label            *string                `json:"label"`
	Fieldtype        *string                `json:"fieldtype"`
	Options          map[string]interface{} `json:"options"`
	Required         *bool                  `json:"required"`
	Unique           *bool                  `json:"unique"`
	InListView       *bool                  `json:"in_list_view"`
	InStandardFilter *bool                  `json:"in_standard_filter"`
	ReadOnly         *bool                  `json:"read_only"`
	Hidden           *bool                  `json:"hidden"`
	Description      *string                `json:"description"`
	DefaultValue     *string                `json:"default_value"`
	SortOrder        *int                   `json:"sort_order"`
	DependsOn        *string                `json:"depends_on"`
}

// ListFilters narrows and paginates doctype listing.
type ListFilters struct {
	Active  *bool
	System  *bool
	Search  string
	Page    int
	PerPage int
}

// ListConfig is the list-view projection consumed by generic list pages.
type ListConfig struct {
	Doctype      string                       `json:"doctype"`
	Title        string                       `json:"title"`
	Fields       map[string]ListConfigField   `json:"fields"`
	ListFields   []string                     `json:"list_fields"`
	FilterFields []string                     `json:"filter_fields"`
}

type ListConfigField struct {
	Label    string `json:"label"`
	Type     string `json:"type"`
	InList   bool   `json:"in_list"`
	InFilter bool   `json:"in_filter"`
}
