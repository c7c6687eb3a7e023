package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"motoparts-api/internal/handlers"
	"motoparts-api/internal/middleware"
)

// Dependencies agrupa lo que necesita el router
type Dependencies struct {
	Users    *handlers.UserHandler
	Products *handlers.ProductHandler
	Orders   *handlers.OrderHandler
	Reviews  *handlers.ReviewHandler
	Tokens   middleware.TokenValidator

	// Ping verifica la base para /health; puede ser nil
	Ping func(ctx context.Context) error
}

// NewRouter arma el engine con el middleware común y todas las rutas
func NewRouter(allowedOrigins []string, deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	RegisterRoutes(router, deps)
	return router
}

// RegisterRoutes registra la tabla de rutas. Públicas: login, catálogo y
// lectura de reseñas. El resto exige token; la administración exige rol admin.
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	authed := middleware.RequireAuth(deps.Tokens)
	admin := []gin.HandlerFunc{authed, middleware.RequireAdmin()}

	router.GET("/health", health(deps.Ping))

	// Usuarios
	router.POST("/users", deps.Users.LoginOrRegister)
	router.GET("/users", append(admin, deps.Users.ListUsers)...)
	router.GET("/user/:uid", authed, deps.Users.GetUser)
	router.PUT("/users/:uid", authed, deps.Users.UpdateUser)
	router.DELETE("/users/:userId", append(admin, deps.Users.DeleteUser)...)
	router.PUT("/make-admin/:id", append(admin, deps.Users.MakeAdmin)...)

	// Productos
	router.GET("/products", deps.Products.ListProducts)
	router.GET("/make_order/:id", deps.Products.GetProduct)
	router.POST("/products", append(admin, deps.Products.CreateProduct)...)
	router.PATCH("/products/:id", authed, deps.Products.AdjustStock)
	router.DELETE("/products/:id", append(admin, deps.Products.DeleteProduct)...)

	// Pedidos
	router.GET("/orders", authed, deps.Orders.ListOrders)
	router.POST("/orders", authed, deps.Orders.CreateOrder)
	router.PUT("/orders/:id", append(admin, deps.Orders.UpdateOrderStatus)...)
	router.DELETE("/orders/:id", append(admin, deps.Orders.DeleteOrder)...)

	// Reseñas
	router.GET("/reviews", deps.Reviews.ListReviews)
	router.POST("/reviews", authed, deps.Reviews.CreateReview)
}

func health(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				middleware.Logger(c).Warn("health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
