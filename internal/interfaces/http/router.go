package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sigec-api/internal/application/auth"
	"github.com/jhoicas/sigec-api/internal/application/quotation"
	"github.com/jhoicas/sigec-api/internal/application/usecase"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	PlanUC      *usecase.PlanUseCase
	ClientUC    *usecase.ClientUseCase
	PriceListUC *usecase.PriceListUseCase
	Quotations  *quotation.Service
	Employees   EmployeeLookup
	JWTSecret   string

	// Limitadores opcionales: GlobalLimiter cubre todo /api, LoginLimiter solo el login.
	GlobalLimiter fiber.Handler
	LoginLimiter  fiber.Handler
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.GlobalLimiter != nil {
		api.Use(deps.GlobalLimiter)
	}

	// Cadena común a todas las rutas autenticadas: JWT válido y cuenta activa.
	protect := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireActiveEmployee(deps.Employees)}
	with := func(extra ...fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, protect...), extra...)
	}
	adminOnly := RequireRole(entity.RoleAdmin)

	// Empleados: registro, confirmación y recuperación son públicos.
	authHandler := NewAuthHandler(deps.AuthUC)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := api.Group("/employees")
	employees.Post("/register", authHandler.Register)
	employees.Get("/confirm-email/:legajo", authHandler.ConfirmEmail)
	if deps.LoginLimiter != nil {
		employees.Post("/login", deps.LoginLimiter, authHandler.Login)
	} else {
		employees.Post("/login", authHandler.Login)
	}
	employees.Post("/forgot-password", authHandler.ForgotPassword)
	employees.Post("/reset-password/:token", authHandler.ResetPassword)
	employees.Get("/myprofile", append(with(), employeeHandler.MyProfile)...)
	employees.Get("/", append(with(adminOnly), employeeHandler.List)...)
	employees.Put("/:legajo", append(with(adminOnly), employeeHandler.UpdateAccess)...)

	// Planes: lectura para cualquier empleado (asesores solo ven activos), escritura admin.
	planHandler := NewPlanHandler(deps.PlanUC)
	plans := api.Group("/plans", protect...)
	plans.Get("/", planHandler.List)
	plans.Get("/:id", planHandler.GetByID)
	plans.Post("/", adminOnly, planHandler.Create)
	plans.Put("/:id", adminOnly, planHandler.Update)
	plans.Delete("/:id", adminOnly, planHandler.Delete)

	// Listas de precios: el cotizador necesita leerlas; las altas y aumentos son de admin.
	priceHandler := NewPriceListHandler(deps.PriceListUC)
	prices := api.Group("/priceLists", protect...)
	prices.Get("/plan/:planId/:tipoLista", priceHandler.ListByPlan)
	prices.Get("/type/:tipoLista", priceHandler.ListByType)
	prices.Get("/monotributo", adminOnly, priceHandler.ListMonotributo)
	prices.Put("/monotributo", adminOnly, priceHandler.UpsertMonotributo)
	prices.Post("/increase", adminOnly, priceHandler.Increase)
	prices.Post("/", adminOnly, priceHandler.BulkCreate)
	prices.Put("/:id", adminOnly, priceHandler.Update)
	prices.Delete("/:id", adminOnly, priceHandler.Delete)

	// Clientes: cartera propia del asesor.
	clientHandler := NewClientHandler(deps.ClientUC)
	quotationHandler := NewQuotationHandler(deps.Quotations)
	clients := api.Group("/clientes", protect...)
	clients.Get("/verify/:dni", quotationHandler.VerifyDNI)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)

	// Cotizaciones.
	quotations := api.Group("/cotizaciones", protect...)
	quotations.Post("/calculate", quotationHandler.Calculate)
	quotations.Get("/verify-dni/:dni", quotationHandler.VerifyDNI)
	quotations.Get("/asesor", quotationHandler.List)
	quotations.Get("/", quotationHandler.List)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/:id/pdf", quotationHandler.PDF)
	quotations.Put("/anular/:id", quotationHandler.Annul)
	quotations.Put("/:id", quotationHandler.Update)
	quotations.Get("/:id", quotationHandler.GetByID)
}
