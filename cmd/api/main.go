package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Horas-api/internal/application/auth"
	"github.com/jhoicas/Horas-api/internal/bootstrap"
	httpRouter "github.com/jhoicas/Horas-api/internal/interfaces/http"
	"github.com/jhoicas/Horas-api/pkg/config"
	"github.com/jhoicas/Horas-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	// Importes y horas como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer store.Close()

	if cfg.DB.AutoMigrate {
		applied, err := store.Migrate(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Ints("applied", applied).Msg("migraciones al día")
	}

	seq, closeSeq, err := bootstrap.NumberSequence(ctx, cfg.Redis, store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("contador de facturas")
	}
	defer closeSeq()

	svc := bootstrap.NewServices(store, seq, cfg.Invoice.Prefix)
	authUC := auth.NewAuthUseCase(cfg.Auth.PasswordHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if !cfg.Auth.Enabled() {
		log.Warn().Msg("AUTH_PASSWORD_HASH vacío: la API no exige autenticación")
	}

	app := httpRouter.NewApp(cfg.App.Name, log.Component("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Horas API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("documentación swagger no encontrada, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     svc.Company,
		ClientUC:      svc.Clients,
		JobUC:         svc.Jobs,
		TimeEntryUC:   svc.TimeEntries,
		DashboardUC:   svc.Dashboard,
		CreateInvoice: svc.CreateInvoice,
		InvoiceUC:     svc.Invoices,
		RenderUC:      svc.Render,
		AuthUC:        authUC,
		AuthEnabled:   cfg.Auth.Enabled(),
		JWTSecret:     cfg.JWT.Secret,
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
