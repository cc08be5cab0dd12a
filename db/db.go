package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// DB is the minimal lifecycle contract shared by both backends.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
