// Package bootstrap arma el grafo de dependencias compartido por el servidor HTTP y el CLI:
// almacén según DB_DRIVER, secuencia de numeración, renderers y casos de uso.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	appanalytics "github.com/jhoicas/Horas-api/internal/application/analytics"
	"github.com/jhoicas/Horas-api/internal/application/billing"
	"github.com/jhoicas/Horas-api/internal/application/usecase"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
	infrahtml "github.com/jhoicas/Horas-api/internal/infrastructure/html"
	infrapdf "github.com/jhoicas/Horas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Horas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Horas-api/internal/infrastructure/redisseq"
	"github.com/jhoicas/Horas-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Horas-api/internal/infrastructure/xmlexport"
	"github.com/jhoicas/Horas-api/pkg/config"
	"github.com/jhoicas/Horas-api/pkg/logger"
)

// Store repositorios y transacciones sobre el driver configurado.
type Store struct {
	Driver  string
	Repos   repository.Repositories
	Tx      repository.TxRunner
	migrate func(ctx context.Context) ([]int, error)
	close   func()
}

// OpenStore abre PostgreSQL (pgxpool) o SQLite según cfg.Driver.
func OpenStore(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &Store{
			Driver:  cfg.Driver,
			Repos:   postgres.NewRepositories(pool),
			Tx:      postgres.NewTxRunner(pool),
			migrate: func(ctx context.Context) ([]int, error) { return postgres.Migrate(ctx, pool) },
			close:   pool.Close,
		}, nil
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("driver no soportado %q", cfg.Driver)
	}
}

// OpenSQLite abre el almacén embebido en path.
func OpenSQLite(ctx context.Context, path string) (*Store, error) {
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("abrir SQLite %s: %w", path, err)
	}
	return &Store{
		Driver:  config.DriverSQLite,
		Repos:   sqlite.NewRepositories(db),
		Tx:      sqlite.NewTxRunner(db),
		migrate: func(ctx context.Context) ([]int, error) { return sqlite.Migrate(ctx, db) },
		close:   func() { _ = db.Close() },
	}, nil
}

// Migrate aplica las migraciones embebidas pendientes y devuelve las versiones aplicadas.
func (s *Store) Migrate(ctx context.Context) ([]int, error) {
	return s.migrate(ctx)
}

// Close libera las conexiones.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// NumberSequence devuelve la secuencia Redis si REDIS_ADDR está definido; si no, el escaneo en base.
// El cierre devuelto libera el cliente Redis (no-op sin Redis).
func NumberSequence(ctx context.Context, cfg config.RedisConfig, store *Store, log *logger.Logger) (billing.NumberSequence, func(), error) {
	scan := billing.NewScanSequence(store.Repos.Invoices)
	if cfg.Addr == "" {
		return scan, func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	if err := redisseq.Ping(ctx, rdb); err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}
	log.Info().Str("addr", cfg.Addr).Msg("numeración de facturas con contador Redis")
	return redisseq.New(rdb, scan), func() { _ = rdb.Close() }, nil
}

// Renderers formatos de salida de factura disponibles, por nombre.
func Renderers() map[string]billing.InvoiceRenderer {
	return map[string]billing.InvoiceRenderer{
		"html": infrahtml.NewRenderer(),
		"pdf":  infrapdf.NewRenderer(),
		"xml":  xmlexport.NewRenderer(),
	}
}

// Services casos de uso de la aplicación.
type Services struct {
	Company       *usecase.CompanyUseCase
	Clients       *usecase.ClientUseCase
	Jobs          *usecase.JobUseCase
	TimeEntries   *usecase.TimeEntryUseCase
	Dashboard     *appanalytics.DashboardUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	Invoices      *billing.InvoiceUseCase
	Render        *billing.RenderUseCase
}

// NewServices construye los casos de uso sobre store.
func NewServices(store *Store, seq billing.NumberSequence, invoicePrefix string) *Services {
	r := store.Repos
	return &Services{
		Company:       usecase.NewCompanyUseCase(r.Company),
		Clients:       usecase.NewClientUseCase(r.Clients, store.Tx),
		Jobs:          usecase.NewJobUseCase(r.Jobs, r.Clients, store.Tx),
		TimeEntries:   usecase.NewTimeEntryUseCase(r.TimeEntries, r.Clients, r.Jobs),
		Dashboard:     appanalytics.NewDashboardUseCase(r.TimeEntries, r.Clients, r.Jobs),
		CreateInvoice: billing.NewCreateInvoiceUseCase(r, seq, invoicePrefix),
		Invoices:      billing.NewInvoiceUseCase(r.Invoices),
		Render:        billing.NewRenderUseCase(r.Invoices, Renderers()),
	}
}
