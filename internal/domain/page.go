package domain

type PageRequest struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection string
}

func (p PageRequest) Offset() int64 {
	return int64(p.Page) * int64(p.Size)
}

type Page[T any] struct {
	Content       []T
	PageNumber    int
	PageSize      int
	TotalElements int64
}

func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.PageSize) - 1) / int64(p.PageSize))
}

func (p Page[T]) First() bool {
	return p.PageNumber == 0
}

func (p Page[T]) Last() bool {
	return p.PageNumber+1 >= p.TotalPages()
}

func (p Page[T]) Empty() bool {
	return len(p.Content) == 0
}
