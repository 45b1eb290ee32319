package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpAdapter "github.com/lattice-engine/lattice/internal/adapters/http"
	"github.com/lattice-engine/lattice/internal/cli"
	"github.com/lattice-engine/lattice/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP solver",
	Long: `Starts the Lattice engine in server mode, exposing a JSON API over HTTP:
one-shot solving, persisted plans, Mermaid graph export, and Prometheus
metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := cli.LoadServeConfig(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = addr
		}

		store, err := cfg.Store.BuildStore()
		if err != nil {
			fmt.Printf("Error building plan store: %v\n", err)
			os.Exit(1)
		}

		logger := logging.New(slog.LevelInfo)
		handler := httpAdapter.NewHandler(store, prometheus.NewRegistry(), logger)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Lattice Server on %s\n", srv.Addr)
			fmt.Printf("Plan store backend: %s\n", cfg.Store.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Lattice Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().StringP("config", "c", "", "Path to a YAML config file")
}
