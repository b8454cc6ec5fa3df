package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootMessage is returned by GET /.
const RootMessage = "Travel Suggester API is running"

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": RootMessage})
}
