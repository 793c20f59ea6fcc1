package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dps-scheduler/internal/application/auth"
	"github.com/jhoicas/dps-scheduler/internal/application/usecase"
	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DPSUC     *usecase.DPSUseCase
	MasterUC  *usecase.MasterUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Corridas DPS (protegido: cualquier rol autenticado)
	dps := protected.Group("/dps")
	dpsHandler := NewDPSHandler(deps.DPSUC)
	dps.Post("/schedule", dpsHandler.Schedule)
	dps.Get("/runs", dpsHandler.ListRuns)

	// Datos maestros: leer cualquiera, reemplazar solo admin
	master := protected.Group("/master")
	masterHandler := NewMasterHandler(deps.MasterUC)
	master.Get("/calendar", masterHandler.ListCalendar)
	master.Put("/calendar", RequireRole(entity.RoleAdmin), masterHandler.ReplaceCalendar)
	master.Get("/skus", masterHandler.ListSKUs)
	master.Put("/skus", RequireRole(entity.RoleAdmin), masterHandler.ReplaceSKUs)
}
