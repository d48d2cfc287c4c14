package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"qbit/internal/app"
	"qbit/internal/cache"
	"qbit/internal/config"
	dom "qbit/internal/domain"
	"qbit/internal/dto"
	"qbit/internal/qnet"
	"qbit/internal/repo"
	"qbit/internal/service"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "qbitctl",
		Short:         "Qbit admin tool: migrations and certification catalog",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	logger := func() hclog.Logger {
		return hclog.New(&hclog.LoggerOptions{Name: "qbitctl", Level: hclog.LevelFromString(logLevel)})
	}

	root.AddCommand(newMigrateCmd(), newCertsCmd(logger), &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return root
}

func newMigrateCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "migrations directory (default MIGRATIONS_DIR)")
	migrationsDir := func(cfg config.CLIConfig) string {
		if dir != "" {
			return dir
		}
		return cfg.App.MigrationsDir
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadCLI()
			if err != nil {
				return err
			}
			return app.RunMigrations(cfg.PG.DSN, migrationsDir(cfg))
		},
	}, &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadCLI()
			if err != nil {
				return err
			}
			return app.MigrationStatus(cfg.PG.DSN, migrationsDir(cfg))
		},
	})
	return cmd
}

func newCertsCmd(logger func() hclog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "certs",
		Short: "Manage the certification catalog",
	}
	var year int
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Replace HRDK exam schedules with the data.go.kr feed for a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadCLI()
			if err != nil {
				return err
			}
			if cfg.QNet.APIKey == "" {
				return errors.New("QNET_API_KEY is not set")
			}
			log := logger()
			svc, closeFn, err := openCatalog(cfg, log)
			if err != nil {
				return err
			}
			defer closeFn()

			src := qnet.NewClient(cfg.QNet.BaseURL, cfg.QNet.APIKey, cfg.QNet.Timeout.Duration())
			res, err := svc.SyncSchedules(cmd.Context(), src, qnet.Agency, year)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "synced %d certs for %d", res.Updated, year)
			if len(res.Unmatched) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), ", no certs for: %s", strings.Join(res.Unmatched, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	syncCmd.Flags().IntVar(&year, "year", time.Now().Year(), "exam year")

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file.json>",
		Short: "Upsert catalog entries by code from a JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			certs, err := readCatalog(args[0])
			if err != nil {
				return err
			}
			cfg, err := config.LoadCLI()
			if err != nil {
				return err
			}
			svc, closeFn, err := openCatalog(cfg, logger())
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := svc.Import(cmd.Context(), certs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d certs: %d new, %d updated\n", len(certs), res.Inserted, res.Updated)
			return nil
		},
	}, syncCmd)
	return cmd
}

// openCatalog connects the cert service to Postgres and, when configured, to the Redis cache
// so catalog writes drop stale search results.
func openCatalog(cfg config.CLIConfig, log hclog.Logger) (*service.CertService, func(), error) {
	db, err := app.NewPostgres(cfg.PG.DSN)
	if err != nil {
		return nil, nil, err
	}
	closers := []func(){db.Close}

	var certCache service.CatalogCache
	if cfg.HasRedis() {
		rdb, err := app.NewRedis(cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, cached searches expire on their own", "error", err)
		} else {
			closers = append(closers, func() { _ = rdb.Close() })
			certCache = cache.NewCertCache(rdb, cfg.Redis.DefaultTTL.Duration())
		}
	}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return service.NewCertService(repo.NewPGCertRepo(db), certCache, log), closeAll, nil
}

func readCatalog(path string) ([]dom.Cert, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var entries []dto.CertImport
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	certs := make([]dom.Cert, len(entries))
	for i, e := range entries {
		certs[i] = e.ToDomain()
	}
	return certs, nil
}
