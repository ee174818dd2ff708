package fakebackend

import (
	"github.com/gin-gonic/gin"

	"wardrobe-planner/pkg/response"
)

const ServiceName = "wardrobe-fakebackend"

func (srv *Server) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": ServiceName,
	})
}
