package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"ac_learner/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

var eventCols = []string{"id", "occurred_at", "type", "message", "meta"}

func TestAppend_FillsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewEventSQLite(db)

	nonEmpty := argFunc(func(v driver.Value) bool {
		s, ok := v.(string)
		return ok && len(s) == 36
	})
	sqliteTime := argFunc(func(v driver.Value) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, err := time.Parse(sqliteTimeLayout, s)
		return err == nil
	})

	mock.ExpectExec(regexp.QuoteMeta(insertEventSQL)).
		WithArgs(nonEmpty, sqliteTime, "CAPTURE", "learned bedroom cool/high/stop/24", `{"config":"bedroom"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Append(ctx(t), models.LearningEvent{
		Type:        "  capture ",
		Description: "learned bedroom cool/high/stop/24",
		Metadata:    map[string]any{"config": "bedroom"},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAppend_KeepsGivenIDAndConvertsToUTC(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewEventSQLite(db)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	mock.ExpectExec(regexp.QuoteMeta(insertEventSQL)).
		WithArgs("evt-1", "2025-06-01 09:00:00", "SAVE", "saved 2 configs", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Append(ctx(t), models.LearningEvent{
		EventID:     "evt-1",
		OccurredAt:  at,
		Type:        models.EventSave,
		Description: "saved 2 configs",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewEventSQLite(db)

	mock.ExpectExec("INSERT INTO learning_events").
		WillReturnError(errors.New("disk full"))

	err = repo.Append(ctx(t), models.LearningEvent{Type: models.EventFill, Description: "x"})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAppend_UnmarshalableMetadata(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewEventSQLite(db)
	err = repo.Append(ctx(t), models.LearningEvent{Type: models.EventSend, Metadata: make(chan int)})
	if err == nil {
		t.Fatalf("expected marshal error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestList_NoFilters_And_MetadataParsing(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewEventSQLite(db)

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	js, _ := json.Marshal(map[string]any{"pairs": 4.0})

	rows := sqlmock.NewRows(eventCols).
		AddRow("1", now, "CLONE", "cloned cool/high", string(js)).
		AddRow("2", now.Add(time.Hour), "SEND", "sent bedroom", nil).
		AddRow("3", now.Add(2*time.Hour), "FILL", "filled", "not json")

	mock.ExpectQuery(regexp.QuoteMeta(selectEventsSQL + ` ORDER BY occurred_at ASC`)).
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3, got %d", len(got))
	}
	b, _ := json.Marshal(got[0].Metadata)
	if string(b) != string(js) {
		t.Fatalf("metadata mismatch: %s vs %s", b, js)
	}
	if got[1].Metadata != nil {
		t.Fatalf("expected nil meta, got %#v", got[1].Metadata)
	}
	if got[2].Metadata != "not json" {
		t.Fatalf("raw metadata should be kept, got %#v", got[2].Metadata)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestList_WithFilters(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewEventSQLite(db)

	from := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	query := selectEventsSQL + ` WHERE occurred_at >= ? AND occurred_at <= ? AND type = ? ORDER BY occurred_at ASC`
	rows := sqlmock.NewRows(eventCols).
		AddRow("2", from, "CAPTURE", "b", nil).
		AddRow("3", to, "CAPTURE", "c", nil)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(from, to, "CAPTURE").
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), from, to, " capture ")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].EventID != "2" || got[1].EventID != "3" {
		t.Fatalf("unexpected results: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestList_ScanError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewEventSQLite(db)

	rows := sqlmock.NewRows(eventCols).
		AddRow("x", 123, "SEND", "msg", nil)
	mock.ExpectQuery(regexp.QuoteMeta(selectEventsSQL)).
		WillReturnRows(rows)

	if _, err := repo.List(ctx(t), time.Time{}, time.Time{}, ""); err == nil {
		t.Fatalf("expected scan error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

type argFunc func(v driver.Value) bool

func (f argFunc) Match(v driver.Value) bool { return f(v) }
