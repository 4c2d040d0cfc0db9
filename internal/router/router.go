package router

import (
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/handler/products"
	"storefront/internal/handler/users"
	"storefront/internal/storage"
	"storefront/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup registers every route against the injected collaborators.
func Setup(e *echo.Echo, db database.DB, st storage.Storage, wp worker.Pool) {
	e.GET("/ping", handler.PingHandler(db))

	product := e.Group("/product")
	product.GET("", products.ListProductsHandler(db))
	product.GET("/:id", products.GetProductHandler(db))
	product.POST("", products.CreateProductHandler(db, st, wp))
	product.PUT("/:id", products.UpdateProductHandler(db, st))
	product.DELETE("/:id", products.DeleteProductHandler(db, st, wp))

	user := e.Group("/user")
	user.GET("", users.ListUsersHandler(db))
	user.GET("/:id", users.GetUserHandler(db))
	user.POST("", users.CreateUserHandler(db))
	user.PUT("/:id", users.UpdateUserHandler(db))
	user.PUT("/updateuserimage/:id", users.UpdateUserImageHandler(db, st, wp))
	user.DELETE("/:id", users.DeleteUserHandler(db, st, wp))
}
