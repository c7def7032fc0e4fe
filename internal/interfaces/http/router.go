package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appanalytics "github.com/jhoicas/Horas-api/internal/application/analytics"
	"github.com/jhoicas/Horas-api/internal/application/auth"
	"github.com/jhoicas/Horas-api/internal/application/billing"
	"github.com/jhoicas/Horas-api/internal/application/usecase"
	"github.com/jhoicas/Horas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	ClientUC      *usecase.ClientUseCase
	JobUC         *usecase.JobUseCase
	TimeEntryUC   *usecase.TimeEntryUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoiceUC     *billing.InvoiceUseCase
	RenderUC      *billing.RenderUseCase
	AuthUC        *auth.AuthUseCase
	AuthEnabled   bool
	JWTSecret     string
}

// NewApp crea la app Fiber con el error handler de dominio y los middlewares comunes.
func NewApp(appName string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Sin AUTH_PASSWORD_HASH las rutas quedan abiertas (uso local de un solo operador)
	protected := api
	if deps.AuthEnabled {
		protected = api.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.Get)
	protected.Put("/company", companyHandler.Update)

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	jobs := protected.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC)
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Put("/:id", jobHandler.Update)
	jobs.Delete("/:id", jobHandler.Delete)

	entries := protected.Group("/time-entries")
	entryHandler := NewTimeEntryHandler(deps.TimeEntryUC)
	entries.Post("/", entryHandler.Create)
	entries.Get("/", entryHandler.List)
	entries.Get("/:id", entryHandler.GetByID)
	entries.Put("/:id", entryHandler.Update)
	entries.Delete("/:id", entryHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoiceUC, deps.RenderUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/:format", invoiceHandler.Render)
}
