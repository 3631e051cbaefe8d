package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Health reports service liveness plus redis connectivity. The record store
// is not probed — it is rate-limited upstream and a failed probe would say
// nothing a real request wouldn't.
func Health(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		redisStatus := "ok"
		if rdb != nil {
			if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
				redisStatus = "down"
			}
		} else {
			redisStatus = "disabled"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"redis":  redisStatus,
		})
	}
}
