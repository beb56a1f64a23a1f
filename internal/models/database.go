package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	DBContextURL ContextKey = "quanlythuchi-url"
)

// Connect opens the SQLite database and configures the connection pool.
//
// Foreign keys stay disabled: transactions and budgets may reference
// categories that have been deleted or not yet been imported.
func Connect(dsn string) error {
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(0)", dsn)
	db, err := gorm.Open(sqlite.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite only supports one writer, a single connection
	// prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return setup(db)
}

// ConnectPostgres opens a PostgreSQL database. It is used when DB_HOST is set.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return setup(db)
}

func config() *gorm.Config {
	return &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

// setup migrates the schema, seeds the default categories and registers
// the error callbacks. It sets DB on success.
func setup(db *gorm.DB) error {
	err := migrate(db)
	if err != nil {
		return err
	}

	err = seedDefaultCategories(db)
	if err != nil {
		return err
	}

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "quanlythuchi:after_query", queryCallback},
		{db.Callback().Create().After("*"), "quanlythuchi:after_create", createUpdateCallback},
		{db.Callback().Update().After("*"), "quanlythuchi:after_update", createUpdateCallback},
		{db.Callback().Delete().After("*"), "quanlythuchi:after_delete", generalCallback},
		{db.Callback().Row().After("*"), "quanlythuchi:after_row", generalCallback},
	}

	for _, c := range callbacks {
		err = c.processor.Register(c.name, c.fn)
		if err != nil {
			return err
		}
	}

	DB = db
	return nil
}

// resourceName derives a human readable resource name from a table name.
func resourceName(table string) string {
	name := strings.ReplaceAll(table, "_", " ")

	// Replace pluralized "ies" with "y"
	name = regexp.MustCompile("ies$").ReplaceAllString(name, "y")

	// Remove plural "s"
	return strings.TrimRight(name, "s")
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
		return
	}

	generalCallback(db)
}

// sqlitePrimaryKey is the extended result code SQLITE_CONSTRAINT_PRIMARYKEY
const sqlitePrimaryKey = 1555

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// Emails identify users
	if strings.Contains(msg, "UNIQUE constraint failed: users.email") || strings.Contains(msg, "idx_users_email") {
		db.Error = ErrEmailInUse
		return
	}

	// Client generated IDs can collide
	var sqliteErr *go_sqlite.Error
	if (errors.As(db.Error, &sqliteErr) && sqliteErr.Code() == sqlitePrimaryKey) || strings.Contains(msg, "_pkey") {
		db.Error = fmt.Errorf("%w: %s", ErrIDInUse, resourceName(db.Statement.Table))
		return
	}

	generalCallback(db)
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil || isKnown(db.Error) {
		return
	}

	// This covers "sql: database is closed", which is hard-coded in the sql
	// module, as well as all *sqlite.Error and driver errors
	log.Error().Str("type", reflect.TypeOf(db.Error).String()).Msg(db.Error.Error())
	db.Error = ErrGeneral
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(User{}, Category{}, Transaction{}, Budget{}, RecurringRule{}, SavingsGoal{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
