package dto

import "time"

// QueryParameters is the shared input contract for list-style reads:
// 1-based paging, an optional sort key with descending flag, and an
// optional free-text search term. Entity-specific parameter types embed
// it and add typed filter fields that narrow conjunctively.
type QueryParameters struct {
	Page           int    `form:"page" json:"page"`
	PageSize       int    `form:"pageSize" json:"page_size"`
	SortBy         string `form:"sortBy" json:"sort_by"`
	SortDescending bool   `form:"sortDesc" json:"sort_descending"`
	SearchTerm     string `form:"search" json:"search_term"`
}

// Normalize clamps paging inputs to sane bounds.
func (q *QueryParameters) Normalize(defaultPageSize, maxPageSize int) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if maxPageSize > 0 && q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
}

// PersonQueryParameters adds the person-specific filters.
type PersonQueryParameters struct {
	QueryParameters
	PersonType     string     `form:"personType" json:"person_type"`
	FirstName      string     `form:"firstName" json:"first_name"`
	LastName       string     `form:"lastName" json:"last_name"`
	Email          string     `form:"email" json:"email"`
	Phone          string     `form:"phone" json:"phone"`
	City           string     `form:"city" json:"city"`
	ModifiedAfter  *time.Time `form:"modifiedAfter" time_format:"2006-01-02" json:"modified_after"`
	ModifiedBefore *time.Time `form:"modifiedBefore" time_format:"2006-01-02" json:"modified_before"`
}

// PagedResult carries one page of items plus pagination metadata. The
// total count is always computed over the filtered-but-unpaged set.
type PagedResult[T any] struct {
	Items           []T  `json:"items"`
	TotalCount      int  `json:"total_count"`
	Page            int  `json:"page"`
	PageSize        int  `json:"page_size"`
	TotalPages      int  `json:"total_pages"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

// NewPagedResult derives the page-count metadata from the inputs.
func NewPagedResult[T any](items []T, totalCount, page, pageSize int) PagedResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return PagedResult[T]{
		Items:           items,
		TotalCount:      totalCount,
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
