package dto

import (
	"tzfield/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// ApplyDefaults fills unset paging values. Recommended before listing large
// tables so a missing limit does not select everything.
func (q *QueryParams) ApplyDefaults() {
	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}

	if q.SortBy == "" {
		q.SortBy = constant.DefaultValueSortBy
	}

	if q.SortDir != SortDirAsc && q.SortDir != SortDirDesc {
		q.SortDir = constant.DefaultValueSortDir
	}
}
