package pg

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/wework/cbridge/cbridge"
	"github.com/wework/cbridge/cbridge/tx"
)

const (
	mappingsTable  = "mappings"
	pingTimeout    = 3 * time.Second
	connectRetries = 5
)

//MappingStore persists mapping definitions of a service in PostgreSQL
type MappingStore struct {
	*cbridge.Glogged
	*cbridge.Safety
	provider *tx.Provider
	svcName  string
}

//NewMappingStore returns a store keeping the mappings of svcName in its own table
func NewMappingStore(svcName string, provider *tx.Provider) *MappingStore {
	return &MappingStore{
		Glogged:  &cbridge.Glogged{},
		Safety:   &cbridge.Safety{},
		provider: provider,
		svcName:  svcName}
}

func (store *MappingStore) tableName() string {
	return tx.TableNameTemplate(store.svcName, mappingsTable)
}

//EnsureSchema waits for the database to answer and creates the mappings table when missing
func (store *MappingStore) EnsureSchema() error {
	ping := func() error {
		if !store.provider.Ping(pingTimeout) {
			return fmt.Errorf("database did not answer ping within %v", pingTimeout)
		}
		return nil
	}
	if err := store.SafeWithRetries(ping, connectRetries); err != nil {
		store.Log().WithError(err).Error("mapping store could not reach the database")
		return err
	}

	createSQL := `CREATE TABLE IF NOT EXISTS ` + store.tableName() + ` (
	rec_id VARCHAR(20) PRIMARY KEY,
	position INTEGER NOT NULL,
	direction VARCHAR(16) NOT NULL,
	address TEXT NOT NULL,
	uri TEXT NOT NULL,
	headers_copy BOOLEAN NOT NULL,
	blocking BOOLEAN NOT NULL,
	worker TEXT NOT NULL,
	publish BOOLEAN NOT NULL,
	body_type TEXT NOT NULL
	)`
	if _, err := store.provider.GetDb().Exec(createSQL); err != nil {
		store.Log().WithError(err).WithField("table", store.tableName()).Error("failed creating mappings table")
		return err
	}
	return nil
}

//Save replaces the stored definitions with defs, keeping their order
func (store *MappingStore) Save(tx *sql.Tx, defs []Definition) error {
	tblName := store.tableName()
	if _, err := tx.Exec(`DELETE FROM ` + tblName); err != nil {
		return err
	}

	insertSQL := `INSERT INTO ` + tblName + ` (rec_id, position, direction, address, uri, headers_copy, blocking, worker, publish, body_type)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for i, def := range defs {
		_, err := tx.Exec(insertSQL, xid.New().String(), i, string(def.Direction), def.Address, def.URI,
			def.HeadersCopy, def.Blocking, def.Worker, def.Publish, def.BodyType)
		if err != nil {
			store.Log().WithError(err).WithFields(logrus.Fields{"address": def.Address, "uri": def.URI}).Error("failed saving mapping")
			return err
		}
	}
	store.Log().WithField("mappings", len(defs)).Info("mappings saved")
	return nil
}

//Load returns the stored definitions in the order they were saved
func (store *MappingStore) Load(tx *sql.Tx) ([]Definition, error) {
	selectSQL := `SELECT direction, address, uri, headers_copy, blocking, worker, publish, body_type FROM ` +
		store.tableName() + ` ORDER BY position`

	rows, err := tx.Query(selectSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	defs := make([]Definition, 0)
	for rows.Next() {
		var def Definition
		var direction string
		if err := rows.Scan(&direction, &def.Address, &def.URI, &def.HeadersCopy, &def.Blocking,
			&def.Worker, &def.Publish, &def.BodyType); err != nil {
			store.Log().WithError(err).Error("failed to scan mapping row")
			return nil, err
		}
		def.Direction = cbridge.Direction(direction)
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

//Purge removes every stored definition of the service
func (store *MappingStore) Purge() error {
	_, err := store.provider.GetDb().Exec(`DELETE FROM ` + store.tableName())
	if err != nil {
		store.Log().WithError(err).Error("failed purging mappings")
	}
	return err
}
