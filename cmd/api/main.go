package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/vendus-gateway/internal/application/auth"
	"github.com/tu-usuario/vendus-gateway/internal/application/clients"
	"github.com/tu-usuario/vendus-gateway/internal/application/orders"
	"github.com/tu-usuario/vendus-gateway/internal/application/products"
	"github.com/tu-usuario/vendus-gateway/internal/infrastructure/postgres"
	"github.com/tu-usuario/vendus-gateway/internal/infrastructure/vendus"
	httpRouter "github.com/tu-usuario/vendus-gateway/internal/interfaces/http"
	"github.com/tu-usuario/vendus-gateway/pkg/config"
	"github.com/tu-usuario/vendus-gateway/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	pendingRepo := postgres.NewPendingOrderRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)

	vendusClient := vendus.New(cfg.Vendus.BaseURL, cfg.Vendus.APIKey)

	clientUC := clients.NewClientUseCase(vendusClient, log)
	productUC := products.NewProductUseCase(vendusClient)
	ordersUC := orders.NewOrdersUseCase(vendusClient, log)
	approvalUC := orders.NewApprovalUseCase(pendingRepo, vendusClient, log)
	authUC := auth.NewAuthUseCase(accountRepo, clientUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 35,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + httpRouter.HeaderInternalKey,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vendus Gateway API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ClientUC:       clientUC,
		ProductUC:      productUC,
		OrdersUC:       ordersUC,
		ApprovalUC:     approvalUC,
		JWTSecret:      cfg.JWT.Secret,
		InternalAPIKey: cfg.App.InternalAPIKey,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
