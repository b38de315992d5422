package pg

import (
	"database/sql"

	_ "github.com/lib/pq" //blank import
	"github.com/wework/cbridge/cbridge/tx"
)

//NewTxProvider returns a new PostgreSQL backed provider
func NewTxProvider(connStr string) (*tx.Provider, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	return &tx.Provider{Database: db}, nil
}
