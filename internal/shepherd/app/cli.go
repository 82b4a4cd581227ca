package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
	"github.com/spf13/cobra"
)

// Execute runs the shepherd command line and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree. Configuration comes from the
// environment; flags only override the database and catalog paths.
func NewRootCmd(out io.Writer) *cobra.Command {
	var (
		databaseFile    string
		roleCatalogFile string
	)

	config := func(cmd *cobra.Command) Config {
		cfg := LoadConfig()
		if cmd.Flags().Changed("database") {
			cfg.DatabaseFile = databaseFile
		}
		if cmd.Flags().Changed("catalog") {
			cfg.RoleCatalogFile = roleCatalogFile
		}
		return cfg
	}

	rootCmd := &cobra.Command{
		Use:           "shepherd",
		Short:         "Church administration service",
		Long:          "Shepherd serves member records, events, attendance and discipleship tracking behind role based access control.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the binary with no subcommand starts the server.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(config(cmd))
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&databaseFile, "database", "", "SQLite database file (overrides SHEPHERD_DATABASE_FILE)")
	rootCmd.PersistentFlags().StringVar(&roleCatalogFile, "catalog", "", "Role catalog YAML file (overrides ROLE_CATALOG_FILE)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(config(cmd))
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg := config(cmd)
				db, err := OpenStore(cfg, NewLogger(cfg))
				if err != nil {
					return err
				}
				defer db.Close()

				version, _, err := db.MigrationVersion()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "database %s at migration %d\n", cfg.DatabaseFile, version)
				return err
			},
		},
		newRolesCmd(config),
		newVersionCmd(),
	)

	return rootCmd
}

func newRolesCmd(config func(*cobra.Command) Config) *cobra.Command {
	rolesCmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage the role catalog",
	}

	rolesCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Create or refresh the catalog roles",
		Long:  "Applies the role catalog to the database. Existing catalog roles are updated in place and custom roles are left alone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config(cmd)
			logger := NewLogger(cfg)

			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			db, err := OpenStore(cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			roles := &service.RolesService{Store: db, Catalog: catalog}
			res, err := roles.Initialize(slogx.WithContext(context.Background(), logger))
			if err != nil {
				return fmt.Errorf("seed roles: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "roles created: %d, updated: %d\n", res.Created, res.Updated)
			return err
		},
	})

	return rolesCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "shepherd version %s\n", BuildVersion)
			return err
		},
	}
}

func serve(cfg Config) error {
	application, err := New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run()
}
