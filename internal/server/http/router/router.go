package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/greencart/storefront/internal/config"
	"github.com/greencart/storefront/internal/server/http/handlers"
	"github.com/greencart/storefront/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authHandler := handlers.NewAuthHandler(facade)
	sellerHandler := handlers.NewSellerHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	addressHandler := handlers.NewAddressHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	userAuth := middleware.AuthRequired(facade)
	sellerAuth := middleware.SellerRequired(facade)

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is working")
	})

	api := engine.Group("/api")
	api.GET("/getkey", orderHandler.GatewayKey)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)
	user.GET("/is-auth", userAuth, authHandler.IsAuth)
	user.GET("/logout", userAuth, authHandler.Logout)

	seller := api.Group("/seller")
	seller.POST("/login", sellerHandler.Login)
	seller.GET("/is-auth", sellerAuth, sellerHandler.IsAuth)
	seller.GET("/logout", sellerAuth, sellerHandler.Logout)

	product := api.Group("/product")
	product.GET("/list", productHandler.List)
	product.GET("/id", productHandler.Get)
	product.POST("/add", sellerAuth, productHandler.Add)
	product.POST("/stock", sellerAuth, productHandler.SetStock)

	api.POST("/cart/update", userAuth, cartHandler.Update)

	address := api.Group("/address", userAuth)
	address.POST("/add", addressHandler.Add)
	address.GET("/get", addressHandler.List)

	order := api.Group("/order")
	order.POST("/cod", userAuth, orderHandler.PlaceCOD)
	order.POST("/razorpay", userAuth, orderHandler.PlaceOnline)
	order.POST("/verify", userAuth, orderHandler.Verify)
	order.GET("/user", userAuth, orderHandler.UserOrders)
	order.GET("/seller", sellerAuth, orderHandler.SellerOrders)

	return engine
}
