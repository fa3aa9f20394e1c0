package app

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guttosm/bizdays/config"
)

func historyConfig(url string) config.Config {
	return config.Config{Postgres: config.PostgresConfig{
		Enabled:  true,
		User:     "u",
		Password: "p",
		Host:     "h",
		Port:     5432,
		DBName:   "bizdays",
		SSLMode:  "disable",
		URL:      url,
	}}
}

func TestInitPostgres_DSN(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{name: "built from fields", url: "", want: "postgres://u:p@h:5432/bizdays?sslmode=disable"},
		{name: "configured url wins", url: "postgres://other@db:6543/history?sslmode=require", want: "postgres://other@db:6543/history?sslmode=require"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotDriver, gotDSN string
			old := sqlOpener
			sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
				gotDriver, gotDSN = driverName, dataSourceName
				return nil, errors.New("open failed")
			}
			t.Cleanup(func() { sqlOpener = old })

			if _, err := InitPostgres(historyConfig(tc.url)); err == nil {
				t.Fatalf("expected error from InitPostgres when open fails")
			}
			if gotDriver != "postgres" || gotDSN != tc.want {
				t.Fatalf("opened %s %q, want postgres %q", gotDriver, gotDSN, tc.want)
			}
		})
	}
}

func TestInitPostgres_PingErrorClosesPool(t *testing.T) {
	var mock sqlmock.Sqlmock
	old := sqlOpener
	sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
		db, m, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		if err != nil {
			t.Fatalf("sqlmock new: %v", err)
		}
		m.ExpectPing().WillReturnError(errors.New("ping failed"))
		m.ExpectClose()
		mock = m
		return db, nil
	}
	t.Cleanup(func() { sqlOpener = old })

	if _, err := InitPostgres(historyConfig("")); err == nil {
		t.Fatalf("expected ping error from InitPostgres")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("pool not closed after failed ping: %v", err)
	}
}

func TestInitPostgres_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	mock.ExpectPing()

	old := sqlOpener
	sqlOpener = func(string, string) (*sql.DB, error) { return db, nil }
	t.Cleanup(func() {
		sqlOpener = old
		_ = db.Close()
	})

	got, err := InitPostgres(historyConfig(""))
	if err != nil || got != db {
		t.Fatalf("InitPostgres: db=%v err=%v", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
