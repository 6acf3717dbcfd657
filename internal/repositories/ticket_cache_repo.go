package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	intconfig "busbook/internal/config"
	intdb "busbook/internal/db"
	"busbook/internal/domain"
	"busbook/internal/domain/models"
)

// TicketCacheRepo stores confirmed tickets keyed booked_<sessionId>. The
// table is append-only; entries never expire or get invalidated here.
type TicketCacheRepo struct {
	DB *sql.DB
}

func (r TicketCacheRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TicketCacheRepo) table() string {
	return "booked_tickets"
}

func cacheKey(sessionID string) string {
	return "booked_" + strings.TrimSpace(sessionID)
}

// Get returns the cached ticket for a session id, if one was stored.
func (r TicketCacheRepo) Get(sessionID string) (models.Ticket, bool, error) {
	db := r.db()
	if db == nil {
		return models.Ticket{}, false, domain.InternalError{Msg: "ticket cache db unavailable"}
	}
	if !intdb.HasTable(db, r.table()) {
		return models.Ticket{}, false, nil
	}

	var payload string
	err := db.QueryRow(`
		SELECT COALESCE(payload,'')
		FROM `+r.table()+`
		WHERE cache_key=? LIMIT 1`, cacheKey(sessionID)).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.Ticket{}, false, nil
	}
	if err != nil {
		return models.Ticket{}, false, domain.InternalError{Msg: "ticket cache lookup failed", Err: err}
	}

	var t models.Ticket
	if err := json.Unmarshal([]byte(payload), &t); err != nil {
		return models.Ticket{}, false, domain.InternalError{Msg: "cached ticket is unreadable", Err: err}
	}
	return t, true, nil
}

// Put stores a ticket under its session key. INSERT IGNORE keeps the first
// stored confirmation authoritative on concurrent re-views.
func (r TicketCacheRepo) Put(sessionID string, t models.Ticket) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "ticket cache db unavailable"}
	}
	if err := r.ensureTable(); err != nil {
		return domain.InternalError{Msg: "ticket cache table unavailable", Err: err}
	}

	payload, err := json.Marshal(t)
	if err != nil {
		return domain.InternalError{Msg: "failed to serialize ticket", Err: err}
	}

	_, err = db.Exec(`
		INSERT IGNORE INTO `+r.table()+` (cache_key, session_id, payload)
		VALUES (?,?,?)`, cacheKey(sessionID), strings.TrimSpace(sessionID), string(payload))
	if err != nil {
		return domain.InternalError{Msg: "failed to store ticket", Err: err}
	}
	return nil
}

// Count reports how many tickets are cached (used by the db-check endpoint).
func (r TicketCacheRepo) Count() (int, error) {
	db := r.db()
	if db == nil {
		return 0, fmt.Errorf("ticket cache db unavailable")
	}
	if !intdb.HasTable(db, r.table()) {
		return 0, nil
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + r.table()).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r TicketCacheRepo) ensureTable() error {
	db := r.db()
	if intdb.HasTable(db, r.table()) {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS booked_tickets (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	cache_key VARCHAR(191) NOT NULL,
	session_id VARCHAR(191) NOT NULL,
	payload TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_cache_key (cache_key),
	KEY idx_session (session_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}
