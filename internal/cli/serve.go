package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"poorcene/internal/logging"
	"poorcene/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the index over HTTP",
	Long: `Serve the index over HTTP. The index is saved on shutdown.

Routes:
  POST /words      {"word": "casas"}
  GET  /query?q=   words sharing the stem of q
  GET  /compare?q= index against linear list scans
  GET  /stem?w=    stem a word (add trace=true for every stage)
  GET  /stats
  GET  /metrics    Prometheus metrics
  GET  /healthz`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	addr := GetConfig().Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	var metricsHandler http.Handler
	if a.metrics != nil {
		metricsHandler = a.metrics.Handler()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(addr, a.uc, a.tracer, metricsHandler, logging.WithComponent("server"))
	return srv.Run(ctx)
}
