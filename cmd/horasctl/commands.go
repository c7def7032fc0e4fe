package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Horas-api/internal/application/auth"
	"github.com/jhoicas/Horas-api/internal/application/billing"
	"github.com/jhoicas/Horas-api/internal/bootstrap"
	"github.com/jhoicas/Horas-api/pkg/config"
	"github.com/jhoicas/Horas-api/pkg/logger"
)

const commandTimeout = time.Minute

// cli estado compartido por los subcomandos.
type cli struct {
	cfg        *config.Config
	log        *logger.Logger
	driver     string
	sqlitePath string
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "horasctl",
		Short: "Herramientas de operador de Horas",
		Long: `horasctl ejecuta tareas de mantenimiento sobre el almacén configurado.

La configuración se lee igual que en el servidor (variables de entorno, .env, config.env);
--driver y --sqlite-path la sobrescriben.

EJEMPLOS:
  horasctl migrate
  horasctl hash-password 'mi-clave-segura'
  horasctl render-invoice 7f0c... --format pdf --out INV-2026-0001.pdf`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.driver, "driver", "", "postgres | sqlite (sobrescribe DB_DRIVER)")
	flags.StringVar(&c.sqlitePath, "sqlite-path", "", "archivo SQLite (sobrescribe SQLITE_PATH)")

	root.AddCommand(c.migrateCmd(), c.hashPasswordCmd(), c.renderInvoiceCmd())
	return root
}

func (c *cli) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.driver != "" {
		cfg.DB.Driver = c.driver
	}
	if c.sqlitePath != "" {
		cfg.DB.SQLitePath = c.sqlitePath
	}
	c.cfg = cfg
	c.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: cmd.ErrOrStderr()})
	return nil
}

func (c *cli) openStore(ctx context.Context) (*bootstrap.Store, error) {
	return bootstrap.OpenStore(ctx, c.cfg.DB)
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			store, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			applied, err := store.Migrate(ctx)
			if err != nil {
				return err
			}
			c.log.Info().Str("driver", store.Driver).Ints("applied", applied).Msg("migraciones al día")
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "sin migraciones pendientes")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migraciones aplicadas: %v\n", applied)
			return nil
		},
	}
}

func (c *cli) hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Imprime el hash bcrypt para AUTH_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func (c *cli) renderInvoiceCmd() *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "render-invoice <invoice-id>",
		Short: "Genera el documento de una factura guardada (html, pdf, xml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			store, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			doc, err := billing.NewRenderUseCase(store.Repos.Invoices, bootstrap.Renderers()).Render(ctx, args[0], format)
			if err != nil {
				return err
			}
			if out == "" {
				out = doc.Filename
			}
			if err := os.WriteFile(out, doc.Body, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", out, len(doc.Body))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "pdf", "html | pdf | xml")
	cmd.Flags().StringVar(&out, "out", "", "archivo de salida (por defecto <número>.<ext>)")
	return cmd
}
