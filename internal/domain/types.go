package domain

// ID is used across domain entities.
type ID int64

// Page carries offset/limit paging params.
type Page struct {
	Offset int `json:"skip"`
	Limit  int `json:"limit"`
}

// Filter expresses a single equality clause.
type Filter struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ListQuery combines paging with an optional equality filter.
type ListQuery struct {
	Page   Page
	Filter *Filter
}

// Window returns the [start, end) slice bounds of the page over n items.
func (p Page) Window(n int) (int, int) {
	start := p.Offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := n
	if p.Limit >= 0 && p.Limit < n-start {
		end = start + p.Limit
	}
	return start, end
}
