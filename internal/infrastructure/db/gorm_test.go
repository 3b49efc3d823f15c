package db

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestOpenGormWithDialector_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New() // fake *sql.DB
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing()

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // don't query @@version
	})

	gdb, err := OpenGormWithDialector(dial)
	if err != nil {
		t.Fatalf("OpenGormWithDialector error: %v", err)
	}
	if gdb == nil {
		t.Fatalf("got nil gorm.DB")
	}

	// Ensure all expectations were met
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGormWithDialector_PingFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("no ping"))

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	gdb, err := OpenGormWithDialector(dial)
	if err == nil {
		t.Fatalf("expected error, got nil (gdb=%v)", gdb)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDialector(t *testing.T) {
	for _, d := range []string{"mysql", "postgres", "sqlite"} {
		dial, err := Dialector(d, "x")
		if err != nil || dial == nil {
			t.Fatalf("%s: dial=%v err=%v", d, dial, err)
		}
		if dial.Name() != d {
			t.Fatalf("%s: dialector name = %q", d, dial.Name())
		}
	}
	if _, err := Dialector("oracle", "x"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestOpenGorm_SQLiteMemory(t *testing.T) {
	gdb, err := OpenGorm("sqlite", "file::memory:", nil)
	if err != nil {
		t.Fatalf("OpenGorm: %v", err)
	}
	if now := gdb.NowFunc(); now.Location() != time.UTC {
		t.Fatalf("NowFunc location = %v, want UTC", now.Location())
	}
	sqlDB, _ := gdb.DB()
	if got := sqlDB.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("max open conns = %d, want 1", got)
	}
}

func TestOpenGorm_TranslatesUniqueViolation(t *testing.T) {
	gdb, err := OpenGorm("sqlite", "file::memory:", nil)
	if err != nil {
		t.Fatalf("OpenGorm: %v", err)
	}
	type row struct {
		ID   string `gorm:"primaryKey"`
		Slug string `gorm:"uniqueIndex"`
	}
	if err := gdb.AutoMigrate(&row{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := gdb.Create(&row{ID: "a", Slug: "wise"}).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := gdb.Create(&row{ID: "b", Slug: "wise"}).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err = %v, want gorm.ErrDuplicatedKey", err)
	}
}
