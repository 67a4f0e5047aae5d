package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/middleware/auth"
)

type Deps struct {
	Catalog   *CatalogHTTP
	User      *UserHTTP
	Order     *OrderHTTP
	Dashboard *DashboardHTTP
	Auth      *AuthHTTP
	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewValidator()

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.POST("/auth/login", d.Auth.Login)

	products := api.Group("/products")
	products.GET("", d.Catalog.GetProducts)
	products.GET("/:id", d.Catalog.GetProduct)

	admin := products.Group("", authmw.RequireAdmin(d.JWTSecret))
	admin.POST("", d.Catalog.CreateProduct)
	admin.PUT("/:id", d.Catalog.UpdateProduct)
	admin.DELETE("/:id", d.Catalog.DeleteProduct)

	users := api.Group("/users")
	users.GET("", d.User.GetUsers)
	users.POST("", d.User.CreateUser)
	users.GET("/:idx", d.User.GetUser)
	users.PUT("/:idx", d.User.UpdateUser)
	users.DELETE("/:idx", d.User.DeactivateUser)

	orders := api.Group("/orders")
	orders.GET("", d.Order.GetOrders)
	orders.GET("/:id", d.Order.GetOrder)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/sales-by-month", d.Dashboard.SalesByMonth)
	dashboard.GET("/sales-by-category", d.Dashboard.SalesByCategory)
	dashboard.GET("/sales-by-brand", d.Dashboard.SalesByBrand)
}
