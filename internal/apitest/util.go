package apitest

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func intQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "invalid id")
		return 0, false
	}
	return id, true
}

// paginate slices [0,n) into the requested window.
func paginate(page, limit, n int) (int, int) {
	lo := (page - 1) * limit
	if lo > n {
		lo = n
	}
	hi := lo + limit
	if hi > n {
		hi = n
	}
	return lo, hi
}

func pageOf[T any](c *gin.Context, all []T) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	lo, hi := paginate(page, limit, len(all))
	respond(c, 200, gin.H{"items": all[lo:hi], "total": len(all)})
}
