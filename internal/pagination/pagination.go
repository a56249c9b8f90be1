package pagination

import (
	"gorm.io/gorm"
)

// PageRequest holds optional pagination parameters parsed from query strings.
// A zero PageSize means the whole list is returned.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// Defaults fills in the first page when only page_size is provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
}

// Limit returns the SQL LIMIT for the request, or -1 for no limit.
func (p PageRequest) Limit() int {
	if p.PageSize <= 0 {
		return -1
	}
	return p.PageSize
}

// Offset returns the SQL OFFSET for the current page.
func (p PageRequest) Offset() int {
	if p.PageSize <= 0 || p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Window returns a GORM scope applying limit and offset. Non-positive
// values leave the query unbounded.
func Window(limit, offset int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}
