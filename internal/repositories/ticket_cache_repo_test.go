package repositories

import (
	"database/sql"
	"encoding/json"
	"testing"

	"busbook/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func cachedTicket() models.Ticket {
	return models.Ticket{
		BookingID:   "BK-100",
		Name:        "Tester",
		Source:      "A",
		Destination: "C",
		BookingDate: "2026-08-28",
		BookingTime: "10:00",
		Qty:         2,
		Fare:        240,
	}
}

func expectTablePresent(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("information_schema\\.tables").WithArgs("booked_tickets").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("booked_tickets"))
}

func TestTicketCacheGetHit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	payload, _ := json.Marshal(cachedTicket())
	expectTablePresent(mock)
	mock.ExpectQuery("FROM booked_tickets").WithArgs("booked_sess_1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(string(payload)))

	repo := TicketCacheRepo{DB: db}
	ticket, ok, err := repo.Get("sess_1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ok {
		t.Fatalf("expected a cache hit")
	}
	if ticket.BookingID != "BK-100" || ticket.Fare != 240 {
		t.Fatalf("cached ticket decoded incorrectly: %+v", ticket)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTicketCacheGetMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTablePresent(mock)
	mock.ExpectQuery("FROM booked_tickets").WithArgs("booked_sess_2").
		WillReturnError(sql.ErrNoRows)

	repo := TicketCacheRepo{DB: db}
	_, ok, err := repo.Get("sess_2")
	if err != nil {
		t.Fatalf("a miss is not an error, got %v", err)
	}
	if ok {
		t.Fatalf("expected a cache miss")
	}
}

func TestTicketCacheGetBeforeTableExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("booked_tickets").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	repo := TicketCacheRepo{DB: db}
	_, ok, err := repo.Get("sess_3")
	if err != nil {
		t.Fatalf("missing table must read as a miss, got %v", err)
	}
	if ok {
		t.Fatalf("expected a miss before the table exists")
	}
}

func TestTicketCachePut(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	payload, _ := json.Marshal(cachedTicket())
	expectTablePresent(mock)
	mock.ExpectExec("INSERT IGNORE INTO booked_tickets").
		WithArgs("booked_sess_1", "sess_1", string(payload)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := TicketCacheRepo{DB: db}
	if err := repo.Put("sess_1", cachedTicket()); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTicketCachePutCreatesTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	payload, _ := json.Marshal(cachedTicket())
	mock.ExpectQuery("information_schema\\.tables").WithArgs("booked_tickets").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS booked_tickets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT IGNORE INTO booked_tickets").
		WithArgs("booked_sess_9", "sess_9", string(payload)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := TicketCacheRepo{DB: db}
	if err := repo.Put("sess_9", cachedTicket()); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
