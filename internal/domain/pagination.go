package domain

// Pagination carries the page/limit query parameters down to the repository
// queries. Handlers default missing or malformed values before it gets here.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Metadata describes the full result set a page was cut from, so clients can
// render pagination controls without a separate count query.
type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	last := (totalRecords + pageSize - 1) / pageSize

	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     last,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}
