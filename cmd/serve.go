package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"config-diff/core/loader"
	"config-diff/core/logger"
	"config-diff/core/middleware/auth"
	"config-diff/core/middleware/requestid"
	"config-diff/feature/compare"
	"config-diff/feature/history"
	"config-diff/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the comparison HTTP server",
	Long:  `Starts the HTTP server exposing POST /compare, the run history and integrity checks of the configured sinks.`,
	Args:  folderCollision,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.cfg.Server.Validate(); err != nil {
			return err
		}

		server, err := newServer(a)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("Starting server", zap.String("address", a.cfg.Server.Address()))
			errCh <- server.Listen(a.cfg.Server.Address())
		}()

		// Graceful Shutdown
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-sig:
		}

		a.logger.Info("Shutting down server...")
		return server.Shutdown()
	},
}

// newServer builds the fiber app with middleware and every enabled feature.
func newServer(a *app) (*fiber.App, error) {
	server := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Request ID first so every log line can be traced.
	server.Use(requestid.New())

	server.Use(func(c *fiber.Ctx) error {
		l := logger.WithRequestID(a.logger, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	server.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	server.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

	mgr := loader.NewManager()
	mgr.Register(compare.NewFeature(a.compare))
	mgr.Register(history.NewFeature(a.history))
	mgr.Register(integrity.NewFeature(a.integrity()))

	loaded, err := mgr.LoadAll(server)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Features loaded", zap.Strings("features", loaded))

	return server, nil
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
