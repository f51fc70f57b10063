package database

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/repository/schema"
	_ "modernc.org/sqlite"
)

// Open connects to the configured store and makes sure the tables exist.
func Open(cfg *config.Config) (*sqlx.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config provided")
	}

	var (
		db  *sqlx.DB
		err error
	)
	switch cfg.Database.Driver {
	case "mysql":
		db, err = sqlx.Connect("mysql", cfg.GetDSN())
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	case "sqlite":
		db, err = sqlx.Connect("sqlite", "file:"+cfg.GetDSN()+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
		if err != nil {
			return nil, err
		}
		// sqlite serializes writers anyway
		db.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if err := schema.Ensure(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
