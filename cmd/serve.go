package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/auth"
	"github.com/HuyTapCode05/quanlythuchi/internal/events"
	"github.com/HuyTapCode05/quanlythuchi/internal/recurring"
	"github.com/HuyTapCode05/quanlythuchi/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the API server.

When RECURRING_INTERVAL is set (e.g. "1h"), due recurring rules are
materialized on startup and then at that interval. When AMQP_URL is
set, changes to transactions are published to the broker.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("port", "", "port to listen on")
	cmd.Flags().Duration("recurring-interval", 0, "interval for materializing recurring rules, 0 disables the worker")
	_ = viper.BindPFlag("port", cmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("recurring_interval", cmd.Flags().Lookup("recurring-interval"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	closeDB, err := connectDatabase()
	if err != nil {
		return err
	}
	defer closeDB()

	expiresIn, err := time.ParseDuration(viper.GetString("jwt_expires_in"))
	if err != nil {
		return fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}
	auth.Tokens = auth.NewTokenService(viper.GetString("jwt_secret"), expiresIn)

	publisher := connectEvents()
	defer publisher.Close()
	events.Use(publisher)

	apiURL, err := url.Parse(viper.GetString("api_url"))
	if err != nil {
		return fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	r, teardown, err := router.Config(apiURL)
	if err != nil {
		return err
	}
	defer teardown()
	router.AttachRoutes(r.Group("/"))

	server := &http.Server{
		Addr:              ":" + viper.GetString("port"),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Str("url", apiURL.String()).Str("version", router.Version()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		log.Info().Msg("shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	if interval := viper.GetDuration("recurring_interval"); interval > 0 {
		worker := recurring.NewWorker(interval)
		g.Go(func() error {
			return worker.Run(log.Logger.WithContext(ctx))
		})
	}

	return g.Wait()
}

// connectEvents returns the AMQP publisher when AMQP_URL is set. If the
// broker cannot be reached, events are discarded and the server runs anyway.
func connectEvents() events.Publisher {
	amqpURL := viper.GetString("amqp_url")
	if amqpURL == "" {
		log.Debug().Msg("AMQP_URL is not set, events are disabled")
		return events.Noop{}
	}

	publisher, err := events.NewAMQP(amqpURL, viper.GetString("amqp_exchange"), viper.GetString("amqp_queue"))
	if err != nil {
		log.Warn().Err(err).Msg("could not connect to AMQP broker, events are disabled")
		return events.Noop{}
	}

	log.Info().Str("exchange", viper.GetString("amqp_exchange")).Str("queue", viper.GetString("amqp_queue")).Msg("publishing events to AMQP")
	return publisher
}
