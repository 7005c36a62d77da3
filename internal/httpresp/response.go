package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// SearchResponse mirrors the search-results page payload: matching rows
// plus the total count for the "N results found" line.
type SearchResponse[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Search[T any](c *gin.Context, data []T) {
	c.JSON(200, SearchResponse[T]{
		Count: len(data),
		Data:  data,
	})
}
