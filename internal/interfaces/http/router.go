package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vendus-gateway/internal/application/auth"
	"github.com/tu-usuario/vendus-gateway/internal/application/clients"
	"github.com/tu-usuario/vendus-gateway/internal/application/orders"
	"github.com/tu-usuario/vendus-gateway/internal/application/products"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ClientUC       *clients.ClientUseCase
	ProductUC      *products.ProductUseCase
	OrdersUC       *orders.OrdersUseCase
	ApprovalUC     *orders.ApprovalUseCase
	JWTSecret      string
	InternalAPIKey string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Cuenta propia (requiere Bearer Token)
	api.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Superficie interna: robots e integraciones, protegida con X-Internal-Key
	internal := api.Group("/", InternalKeyMiddleware(deps.InternalAPIKey))

	productGroup := internal.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	productGroup.Get("/", productHandler.List)
	productGroup.Get("/:id", productHandler.GetByID)

	clientGroup := internal.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clientGroup.Get("/", clientHandler.List)
	clientGroup.Post("/", clientHandler.Resolve)
	clientGroup.Get("/:id", clientHandler.GetByID)

	// Las rutas /pending van antes de /:id para que Fiber no las capture como id.
	orderGroup := internal.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrdersUC, deps.ApprovalUC)
	orderGroup.Get("/pending", orderHandler.ListPending)
	orderGroup.Post("/pending/:id/accept", orderHandler.Accept)
	orderGroup.Post("/pending/:id/reject", orderHandler.Reject)
	orderGroup.Get("/", orderHandler.List)
	orderGroup.Post("/", orderHandler.Submit)
	orderGroup.Get("/:id", orderHandler.GetByID)
}
