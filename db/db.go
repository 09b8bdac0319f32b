// Package db provides the live-store backend of the persondir contract.
package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"persondir"
	"persondir/internal/infra/database"
	"persondir/internal/infra/repository"
)

// Options carries the connection-pool tuning for the underlying store
// connection. The zero value keeps the driver defaults.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Client answers the persondir contract against a live Postgres store.
// An instance is single-owner-at-a-time; use one instance per worker when
// calling concurrently.
type Client struct {
	*repository.PersonRepository
}

var _ persondir.Client = (*Client)(nil)

// DSN composes the store connection string from its parts.
func DSN(username, password, host, port, dbname string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, username, password, dbname, port)
}

// Open connects to the store and returns a ready client. Connection failures
// surface as persondir.ConnectionError.
func Open(dsn string, opts Options) (*Client, error) {
	gdb, err := database.NewPostgres(dsn, database.Pool{
		MaxOpenConns:    opts.MaxOpenConns,
		MaxIdleConns:    opts.MaxIdleConns,
		ConnMaxLifetime: opts.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	return New(gdb), nil
}

// New wraps an existing store handle. Useful when the caller owns connection
// lifecycle, and for test databases.
func New(gdb *gorm.DB) *Client {
	return &Client{PersonRepository: repository.NewPersonRepository(gdb)}
}
