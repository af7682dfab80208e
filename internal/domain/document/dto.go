package document

import "time"

type CreateDocumentDTO struct {
	Data map[string]interface{} `json:"data" binding:"required"`
}

type UpdateDocumentDTO struct {
	Data map[string]interface{} `json:"data" binding:"required"`
}

// ListFilters narrows and paginates document listing for one doctype.
type ListFilters struct {
	Search   string
	FromDate *time.Time
	ToDate   *time.Time
	// Fields filters on values inside the data blob, keyed by fieldname.
	Fields  map[string]interface{}
	Page    int
	PerPage int
}

// Stats summarizes document volume for a doctype.
type Stats struct {
	Total     int64 `json:"total"`
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"this_week"`
	ThisMonth int64 `json:"this_month"`
}
