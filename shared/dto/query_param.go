package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries the ordering of a listing query. The booking listing
// is deliberately unpaginated, so there is no page/limit handling here.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// NewestFirst orders by created_at descending.
func NewestFirst(createdAtField string) QueryParams {
	return QueryParams{
		SortBy:  createdAtField,
		SortDir: SortDirDesc,
	}
}
