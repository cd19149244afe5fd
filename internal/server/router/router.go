package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/stocktrack/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(handler *handlers.StockHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(handlers.IdentityMiddleware())

	r.GET("/allStock", handler.GetAll)
	r.GET("/stock/:id", handler.Get)
	r.POST("/createStock", handler.Create)
	r.PUT("/updateStock/:id", handler.Update)
	r.PUT("/deleteStock/:id", handler.SoftDelete)
	r.DELETE("/stock/:id", handler.Delete)
	r.GET("/AllStockDetails", handler.AllDetails)
	r.GET("/stockByOrgAndCus", handler.ByOrgAndCustomer)
	r.POST("/importExcel", handler.ImportExcel)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
