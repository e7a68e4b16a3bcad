package api

import (
	"strconv"

	"ticket-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

func cursorFromQuery(c *gin.Context) *queries.Cursor {
	after := c.Query("after")
	if after == "" {
		return nil
	}
	return &queries.Cursor{After: after}
}

func limitFromQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0 // query layer applies the default
	}
	return limit
}
