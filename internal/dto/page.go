package dto

type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}

	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    pages,
		First:         page == 0,
		Last:          page >= pages-1,
	}
}

// MapPage converts the content of p while keeping its metadata.
func MapPage[T, U any](p Page[T], fn func(*T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for i := range p.Content {
		out = append(out, fn(&p.Content[i]))
	}
	return Page[U]{
		Content:       out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		First:         p.First,
		Last:          p.Last,
	}
}
