package hooks

import (
	"github.com/gin-gonic/gin"
)

func AppState() gin.HandlerFunc {
	return func(c *gin.Context) {

		// Return the app state
		respondData(c, gin.H{
			"status": "ok",
		})

	}
}
