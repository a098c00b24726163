package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/maloquacious/childsec/internal/bootstrap"
	"github.com/maloquacious/childsec/internal/config"
	"github.com/maloquacious/childsec/internal/schema"
	"github.com/maloquacious/childsec/internal/store"
	"github.com/maloquacious/childsec/internal/style"
)

func newDBCmd(a *app) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}
	a.cfg.BindFlags(dbCmd.PersistentFlags())

	dbCmd.AddCommand(
		newDBCreateCmd(a),
		newDBVerifyCmd(a),
		newDBSeedCmd(a),
		newDBDDLCmd(a),
	)
	return dbCmd
}

func newDBCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create and initialize the datastore",
		Long: `Create the datastore if needed, then create every missing table and index
and insert the default education categories. Running it again is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDBCreate(cmd.Context(), a)
		},
	}
}

func runDBCreate(ctx context.Context, a *app) error {
	s, dataDir, err := newStore(a.cfg, a.log)
	if err != nil {
		return err
	}

	res, err := bootstrap.Run(ctx, bootstrap.Options{Store: s, DataDir: dataDir, Logger: a.log})
	for _, step := range res.Steps {
		fmt.Fprintf(a.stdout, "%s %s %s\n", style.Status(true), step.Name, style.Dim.Render(step.Duration.String()))
	}
	if err != nil {
		return hintWrap(err)
	}

	fmt.Fprintf(a.stdout, "%s datastore %s: %s\n", style.Success.Render(style.IconPass), res.State, describe(a.cfg))
	return nil
}

func newDBVerifyCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify that every table, index and default category is present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDBVerify(cmd.Context(), a, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func runDBVerify(ctx context.Context, a *app, asJSON bool) error {
	s, err := openExisting(ctx, a)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := s.Verify(ctx)
	if err != nil {
		return hintWrap(err)
	}

	if asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printReport(a.stdout, report)
	}

	if !report.Ready() {
		fmt.Fprintf(a.stderr, "%s datastore is not ready (%s)\n", style.Error.Render(style.IconFail), report.State)
		return errExit
	}
	return nil
}

func printReport(w io.Writer, r store.Report) {
	fmt.Fprintln(w, style.Bold.Render("Tables"))
	for _, t := range r.Tables {
		fmt.Fprintf(w, "  %s %s\n", style.Status(t.Present), t.Name)
	}
	fmt.Fprintln(w, style.Bold.Render("Indexes"))
	for _, i := range r.Indexes {
		fmt.Fprintf(w, "  %s %s\n", style.Status(i.Present), i.Name)
	}
	fmt.Fprintf(w, "%s %d/%d\n", style.Bold.Render("Categories"), r.Categories, len(r.Seeds))
	for _, c := range r.Seeds {
		fmt.Fprintf(w, "  %s %s\n", style.Status(c.Present), c.Name)
	}
}

func newDBSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default education categories that are missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openExisting(ctx, a)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.SeedDefaults(ctx); err != nil {
				return hintWrap(err)
			}
			fmt.Fprintf(a.stdout, "%s defaults seeded\n", style.Status(true))
			return nil
		},
	}
}

func newDBDDLCmd(a *app) *cobra.Command {
	var dialect string
	cmd := &cobra.Command{
		Use:   "ddl",
		Short: "Print the CREATE statements of the schema",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if dialect == "" {
				dialect = a.cfg.Driver
			}
			d, err := schema.ParseDialect(dialect)
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.stdout, schema.Script(schema.DDL(d)))
			return err
		},
	}
	cmd.Flags().StringVar(&dialect, "dialect", "", "sqlite or postgres (default: the configured driver)")
	return cmd
}

// openExisting opens the configured store without creating it.
func openExisting(ctx context.Context, a *app) (store.Store, error) {
	s, _, err := newStore(a.cfg, a.log)
	if err != nil {
		return nil, err
	}
	if a.cfg.Driver == config.DriverSQLite {
		exists, err := store.CheckExists(a.cfg.DBPath())
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, hintWrap(noDatabase(a.cfg.DBPath()))
		}
	}
	if err := s.Open(ctx); err != nil {
		_ = s.Close()
		return nil, hintWrap(err)
	}
	return s, nil
}

func describe(cfg *config.Config) string {
	if cfg.Driver == config.DriverPostgres {
		return "postgres"
	}
	return cfg.DBPath()
}
