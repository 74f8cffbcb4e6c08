// Package main Lendify API.
//
// @title           Lendify API
// @version         1.0
// @description     Campus equipment lending service (items, users, borrow/return ledger).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"lendify/app/echoServer"
	authctrl "lendify/app/echoServer/controller/auth"
	borrowctrl "lendify/app/echoServer/controller/borrow"
	dashboardctrl "lendify/app/echoServer/controller/dashboard"
	itemctrl "lendify/app/echoServer/controller/item"
	userctrl "lendify/app/echoServer/controller/user"
	"lendify/app/echoServer/validation"
	"lendify/config"
	itemrepo "lendify/repository/item"
	ledgerrepo "lendify/repository/ledger"
	statsrepo "lendify/repository/stats"
	userrepo "lendify/repository/user"
	authsvc "lendify/service/auth"
	dashboardsvc "lendify/service/dashboard"
	itemsvc "lendify/service/item"
	ledgersvc "lendify/service/ledger"
	usersvc "lendify/service/user"
	"lendify/util/cache"
	"lendify/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	store := database.NewStore(db)

	// optional redis-backed dashboard cache
	ch := cache.New(cfg.RedisAddr)
	defer ch.Close()

	// repos
	ur := userrepo.New(db)
	ir := itemrepo.New(db)
	lr := ledgerrepo.New(db)
	sr := statsrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	is := itemsvc.New(ir)
	us := usersvc.New(ur)
	ls := ledgersvc.New(store, lr)
	ds := dashboardsvc.New(sr, ch)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	itemC := &itemctrl.Controller{Svc: is, V: v, Log: log}
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	borrowC := &borrowctrl.Controller{Svc: ls, V: v, Log: log}
	dashC := &dashboardctrl.Controller{Svc: ds, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Item:      itemC,
		User:      userC,
		Borrow:    borrowC,
		Dashboard: dashC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
