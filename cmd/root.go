// Package cmd implements the command line interface of the server.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// NewRootCommand returns the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "quanlythuchi",
		Short: "Quản lý thu chi: track income, expenses, budgets and savings",
		Long: `quanlythuchi is the backend for a personal finance tracker.

Run "quanlythuchi serve" to start the API. The other commands work
directly on the database configured for the server.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./quanlythuchi.yaml or $HOME/.config/quanlythuchi/quanlythuchi.yaml)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error), defaults to debug in gin debug mode and info otherwise")
	root.PersistentFlags().String("log-format", "", "log format (human, json)")
	root.PersistentFlags().String("data-dir", "", "directory for the SQLite database")

	_ = viper.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", root.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("data_dir", root.PersistentFlags().Lookup("data-dir"))

	root.AddCommand(serveCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(importCmd())
	root.AddCommand(recurringCmd())
	root.AddCommand(reportCmd())
	root.AddCommand(versionCmd())

	return root
}

// Execute runs the command line interface. It stops on SIGINT and SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return err
}

func setDefaults() {
	viper.SetDefault("api_url", "http://localhost:8080")
	viper.SetDefault("port", "8080")
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("gin_mode", gin.ReleaseMode)
	viper.SetDefault("db_port", "5432")
	viper.SetDefault("db_sslmode", "disable")
	viper.SetDefault("jwt_expires_in", "24h")
	viper.SetDefault("amqp_exchange", "quanlythuchi")
	viper.SetDefault("amqp_queue", "transactions")
}

func initConfig(_ *cobra.Command, _ []string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quanlythuchi"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("quanlythuchi")
		viper.SetConfigType("yaml")
	}

	// API_URL, DATA_DIR and so on override the config file
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return setupLogging()
}

// setupLogging configures gin's mode and the global zerolog logger.
func setupLogging() error {
	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(viper.GetString("gin_mode"))

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	format := viper.GetString("log_format")
	output := io.Writer(os.Stdout)
	switch {
	case format == "human", format == "" && gin.IsDebugging():
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	case format == "", format == "json":
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	level := zerolog.InfoLevel
	if gin.IsDebugging() {
		level = zerolog.DebugLevel
	}

	if l := viper.GetString("log_level"); l != "" {
		parsed, err := zerolog.ParseLevel(l)
		if err != nil {
			return fmt.Errorf("invalid log level: %s", l)
		}
		level = parsed
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	return nil
}

// postgresDSN builds the connection string from the DB_* settings.
func postgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		viper.GetString("db_host"),
		viper.GetString("db_port"),
		viper.GetString("db_user"),
		viper.GetString("db_password"),
		viper.GetString("db_name"),
		viper.GetString("db_sslmode"),
	)
}

// connectDatabase opens PostgreSQL when DB_HOST is set and the SQLite
// database in the data directory otherwise. The returned function closes
// the connection.
func connectDatabase() (func(), error) {
	if viper.GetString("db_host") != "" {
		if err := models.ConnectPostgres(postgresDSN()); err != nil {
			return nil, err
		}
		log.Debug().Str("host", viper.GetString("db_host")).Msg("connected to PostgreSQL")
		return closeDatabase, nil
	}

	dir := viper.GetString("data_dir")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	path := filepath.Join(dir, "quanlythuchi.db")
	if err := models.Connect(path); err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Msg("connected to SQLite")

	return closeDatabase, nil
}

func closeDatabase() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("could not close database")
	}
}
