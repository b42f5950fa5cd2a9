package response

import "github.com/Guyuepp/Go-Blog-Moderation/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

// Paginated is the envelope of every list endpoint.
type Paginated[T any] struct {
	Data       []T               `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

func NewPaginated[T any](data []T, p domain.Pagination) Paginated[T] {
	if data == nil {
		data = []T{}
	}
	return Paginated[T]{Data: data, Pagination: p}
}
