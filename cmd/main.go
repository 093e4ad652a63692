package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/ericzzh/mattermost-plugin-offboard/server/blobstore"
	"github.com/ericzzh/mattermost-plugin-offboard/server/sqlstore"
)

func Run(args []string) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// NewRootCmd builds the offboard command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "offboard",
		Short:         "Delete users from a Mattermost database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "offboard.yaml", "path to the configuration file")
	rootCmd.PersistentFlags().Bool("verbose", false, "log debug messages")
	rootCmd.PersistentFlags().Bool("trace", false, "write the trace spans of the run to the error output")

	deleteCmd := &cobra.Command{
		Use:   "delete <userId>",
		Short: "Delete a user and hand over the rooms it owns",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteCmdF,
	}
	deleteCmd.Flags().String("mode", "", "erasure mode of the messages, Delete or Unlink")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "plan <userId>",
			Short: "Show what deleting a user would do",
			Args:  cobra.ExactArgs(1),
			RunE:  planCmdF,
		},
		deleteCmd,
		&cobra.Command{
			Use:   "resume <userId>",
			Short: "Continue an interrupted deletion",
			Args:  cobra.ExactArgs(1),
			RunE:  resumeCmdF,
		},
		&cobra.Command{
			Use:   "pending",
			Short: "List the deletions that did not finish",
			Args:  cobra.NoArgs,
			RunE:  pendingCmdF,
		},
	)

	return rootCmd
}

// runtime is everything a command needs to run a deletion.
type runtime struct {
	config      *Config
	logger      *cliLogger
	db          *sql.DB
	service     app.DeletionService
	stopTracing func(context.Context) error
}

func (r *runtime) Close() {
	if r.stopTracing != nil {
		if err := r.stopTracing(context.Background()); err != nil {
			r.logger.Warnf("Offboard: failed to flush trace spans. err:%v", err)
		}
	}
	if err := r.db.Close(); err != nil {
		r.logger.Warnf("Offboard: failed to close database. err:%v", err)
	}
	r.logger.Close()
}

func initRuntime(command *cobra.Command) (*runtime, error) {
	path, _ := command.Flags().GetString("config")
	verbose, _ := command.Flags().GetBool("verbose")
	trace, _ := command.Flags().GetBool("trace")

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	logger, err := newCLILogger(command.ErrOrStderr(), verbose)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.SQL.Driver, cfg.SQL.DataSource)
	if err != nil {
		logger.Close()
		return nil, errors.Wrapf(err, "failed to open %s database", cfg.SQL.Driver)
	}

	r := &runtime{config: cfg, logger: logger, db: db}
	if cfg.SQL.Driver == "sqlite" {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		r.Close()
		return nil, errors.Wrapf(err, "failed to connect to %s database", cfg.SQL.Driver)
	}

	sqlStore, err := sqlstore.New(db, cfg.SQL.Driver, logger)
	if err != nil {
		r.Close()
		return nil, err
	}

	blobStore, err := blobstore.NewFromConfig(cfg.FileSettings())
	if err != nil {
		r.Close()
		return nil, err
	}

	var traceOut io.Writer
	if trace {
		traceOut = command.ErrOrStderr()
	}
	r.stopTracing, err = setupTracing(context.Background(), cfg.Tracing.Endpoint, traceOut)
	if err != nil {
		r.Close()
		return nil, err
	}

	// The service takes its tracer from the provider installed above.
	r.service = app.NewDeletionService(
		sqlStore.Stores(),
		blobStore,
		sqlstore.NewIntentStore(sqlStore, cfg.PluginId),
		logNotifier{logger: logger},
		sqlstore.NewFederationRegistry(sqlStore),
		logger,
	)

	return r, nil
}

func printJSON(command *cobra.Command, v interface{}) error {
	res, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return errors.Wrap(err, "failed to marshal result")
	}
	fmt.Fprintln(command.OutOrStdout(), string(res))
	return nil
}

// withCode puts the machine readable code of a rejection in front of the error.
func withCode(err error) error {
	if code := app.ErrorCode(err); code != "" {
		return errors.Wrap(err, code)
	}
	return err
}

func planCmdF(command *cobra.Command, args []string) error {
	r, err := initRuntime(command)
	if err != nil {
		return err
	}
	defer r.Close()

	plan, err := r.service.Plan(args[0])
	if err != nil {
		return withCode(err)
	}
	return printJSON(command, plan)
}

func deleteCmdF(command *cobra.Command, args []string) error {
	r, err := initRuntime(command)
	if err != nil {
		return err
	}
	defer r.Close()

	pc := r.config.PluginConfiguration()
	if mode, _ := command.Flags().GetString("mode"); mode != "" {
		pc.ErasureMode = mode
	}

	opts, err := app.NewOptions(pc)
	if err != nil {
		return withCode(err)
	}

	res, err := r.service.DeleteUser(args[0], opts)
	if err != nil {
		return withCode(err)
	}
	return printJSON(command, res)
}

func resumeCmdF(command *cobra.Command, args []string) error {
	r, err := initRuntime(command)
	if err != nil {
		return err
	}
	defer r.Close()

	res, err := r.service.Resume(args[0])
	if err != nil {
		return withCode(err)
	}
	return printJSON(command, res)
}

func pendingCmdF(command *cobra.Command, args []string) error {
	r, err := initRuntime(command)
	if err != nil {
		return err
	}
	defer r.Close()

	intents, err := r.service.PendingIntents()
	if err != nil {
		return err
	}
	return printJSON(command, intents)
}

func main() {
	if err := Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
