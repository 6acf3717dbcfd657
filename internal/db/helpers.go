package db

import "database/sql"

// QueryRower is the minimal query surface shared by *sql.DB and *sql.Tx.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// HasTable reports whether the current schema contains the table.
func HasTable(q QueryRower, table string) bool {
	if q == nil {
		return false
	}
	var name string
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?
		LIMIT 1`, table).Scan(&name)
	return err == nil
}
