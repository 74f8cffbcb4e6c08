package echoServer

import (
	"net/http"

	authctrl "lendify/app/echoServer/controller/auth"
	borrowctrl "lendify/app/echoServer/controller/borrow"
	dashboardctrl "lendify/app/echoServer/controller/dashboard"
	itemctrl "lendify/app/echoServer/controller/item"
	userctrl "lendify/app/echoServer/controller/user"
	"lendify/app/echoServer/jwtx"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth      *authctrl.Controller
	Item      *itemctrl.Controller
	User      *userctrl.Controller
	Borrow    *borrowctrl.Controller
	Dashboard *dashboardctrl.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	// user_id / role extraction from verified claims
	auth.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			uid, err := jwtx.UserIDFromContext(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", uid)
			if role, err := jwtx.RoleFromContext(ctx); err == nil {
				ctx.Set("role", role)
			}
			return next(ctx)
		}
	})

	// Items
	auth.GET("/items", c.Item.List)
	auth.GET("/items/:id", c.Item.Detail)
	// Admin endpoints
	auth.POST("/items", c.Item.Create, RequireAdmin)
	auth.PUT("/items/:id", c.Item.Update, RequireAdmin)
	auth.DELETE("/items/:id", c.Item.Delete, RequireAdmin)

	// Users (admin)
	auth.GET("/users", c.User.List, RequireAdmin)
	auth.GET("/users/deleted", c.User.ListDeleted, RequireAdmin)
	auth.POST("/users", c.User.Create, RequireAdmin)
	auth.PUT("/users/:id", c.User.Update, RequireAdmin)
	auth.DELETE("/users/:id", c.User.Delete, RequireAdmin)
	auth.PUT("/users/:id/recover", c.User.Recover, RequireAdmin)

	// Borrow / return
	auth.GET("/borrow-records", c.Borrow.Records)
	auth.POST("/borrow", c.Borrow.Borrow)
	auth.PUT("/return/:recordId", c.Borrow.Return)
	auth.POST("/borrow/batch", c.Borrow.BorrowBatch)
	auth.POST("/return/batch", c.Borrow.ReturnBatch)

	// Dashboard
	auth.GET("/dashboard/summary", c.Dashboard.Summary)
}
