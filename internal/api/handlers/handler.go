package handlers

import (
	"net/http"

	"github.com/babylonchain/bridge-pool-service/internal/services"
)

type Handler struct {
	services *services.Services
}

type paginationResponse struct {
	NextKey string `json:"next_key"`
}

// PublicResponse is the envelope of every successful response body.
type PublicResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination *paginationResponse `json:"pagination,omitempty"`
}

type Result struct {
	Data   interface{}
	Status int
}

func NewResult[T any](data T) *Result {
	return ok(&PublicResponse[T]{Data: data})
}

// NewResultWithPagination attaches the key of the next page. An empty key
// means the last page was reached.
func NewResultWithPagination[T any](data T, nextKey string) *Result {
	return ok(&PublicResponse[T]{
		Data:       data,
		Pagination: &paginationResponse{NextKey: nextKey},
	})
}

func ok(body interface{}) *Result {
	return &Result{Data: body, Status: http.StatusOK}
}

func New(services *services.Services) *Handler {
	return &Handler{services: services}
}
