package main

import (
	"fmt"

	"github.com/spf13/cobra"

	bigo "github.com/blukebill/BigO"
	"github.com/blukebill/BigO/internal/server"
	"github.com/blukebill/BigO/internal/store"
)

var (
	flagPort int
	flagDB   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over HTTP",
	Long:  "Starts the HTTP transport: GET /health, POST /parse, and — when a history database is configured — GET /history.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&flagPort, "port", 0, "listen port (default from config, 7001)")
	serveCmd.Flags().StringVar(&flagDB, "db", "", "SQLite history database path (default from config; empty disables history)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port := cfg.Server.Port
	if flagPort != 0 {
		port = flagPort
	}
	dbPath := cfg.Server.HistoryDB
	if flagDB != "" {
		dbPath = flagDB
	}

	var opts []server.Option
	if dbPath != "" {
		st, err := store.NewStore(dbPath)
		if err != nil {
			return err
		}
		if err := st.Migrate(); err != nil {
			st.Close()
			return err
		}
		defer st.Close()
		opts = append(opts, server.WithHistory(st))
	}

	srv := server.New(bigo.New().Analyze, opts...)
	return srv.ListenAndServe(fmt.Sprintf(":%d", port))
}
