package fakebackend

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "wardrobe-planner/internal/fakebackend/docs"
)

func (srv *Server) mapHandlers() {
	srv.gin.Use(gin.Recovery(), srv.requestLogger())
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := srv.gin.Group("/api")
	api.POST("/register", srv.register)
	api.POST("/login", srv.login)

	authed := api.Group("", srv.requireUser())
	authed.GET("/users/me", srv.me)

	authed.GET("/wardrobe/items/", srv.listItems)
	authed.POST("/wardrobe/items/", srv.createItem)
	authed.GET("/wardrobe/items/:id", srv.getItem)
	authed.PUT("/wardrobe/items/:id", srv.updateItem)
	authed.DELETE("/wardrobe/items/:id", srv.deleteItem)

	authed.GET("/outfits/", srv.listOutfits)
	authed.POST("/outfits/", srv.createOutfit)
	authed.PUT("/outfits/:id", srv.updateOutfit)
	authed.DELETE("/outfits/:id", srv.deleteOutfit)

	authed.GET("/community/outfits/:id/feedback", srv.listFeedback)
	authed.POST("/community/outfits/:id/feedback", srv.addFeedback)
	authed.DELETE("/community/feedback/:id", srv.deleteFeedback)

	authed.GET("/profile/me", srv.getProfile)
	authed.PUT("/profile/me", srv.updateProfile)
	authed.GET("/recommendations/wardrobe/", srv.suggestions)

	authed.GET("/style-history/", srv.listWear)
	authed.POST("/style-history/", srv.logWear)
	authed.DELETE("/style-history/:id", srv.deleteWear)

	if !srv.noStatistics {
		authed.GET("/statistics/summary", srv.statistics)
		authed.GET("/statistics/item-wear-frequency", srv.itemWearFrequency)
		authed.GET("/statistics/category-usage", srv.categoryUsage)
	}
}

func (srv *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		srv.l.Debugf(c.Request.Context(), "fakebackend: %s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
