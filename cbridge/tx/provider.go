package tx

import (
	"context"
	"database/sql"
	"time"
)

//Provider for PostgreSQL
type Provider struct {
	Database *sql.DB
}

//New transaction
func (provider *Provider) New() (*sql.Tx, error) {
	ctx := context.Background()

	return provider.Database.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

//Dispose database connections
func (provider *Provider) Dispose() {
	provider.Database.Close()
}

//Ping checks if the provider is available and timeouts according to the given duration
func (provider *Provider) Ping(timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return provider.Database.PingContext(ctx) == nil
}

//GetDb returns the underlying database
func (provider *Provider) GetDb() *sql.DB {
	return provider.Database
}
