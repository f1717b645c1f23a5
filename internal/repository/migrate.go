package repository

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator は埋め込みマイグレーションを適用する
type Migrator struct {
	databaseURL string
	m           *migrate.Migrate
}

// NewMigrator は databaseURL (postgres:// 形式) に対する Migrator を生成する
func NewMigrator(databaseURL string) (*Migrator, error) {
	m, err := newMigrate(databaseURL)
	if err != nil {
		return nil, err
	}
	return &Migrator{databaseURL: databaseURL, m: m}, nil
}

func newMigrate(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("create iofs source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, MigrateURL(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return m, nil
}

// Up は未適用のマイグレーションを全て適用する。適用済みなら何もしない
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Down は全マイグレーションを巻き戻す
func (mg *Migrator) Down() error {
	if err := mg.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("revert migrations: %w", err)
	}
	return nil
}

// Fresh は全テーブルを DROP し、全マイグレーションを順番に適用する
func (mg *Migrator) Fresh() error {
	if err := mg.m.Drop(); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	// Drop はマイグレーション管理テーブルも消すので、インスタンスを作り直してから適用する
	if err := mg.Close(); err != nil {
		return err
	}
	m, err := newMigrate(mg.databaseURL)
	if err != nil {
		return err
	}
	mg.m = m
	return mg.Up()
}

// Version は現在のスキーマバージョンを返す
func (mg *Migrator) Version() (version uint, dirty bool, err error) {
	version, dirty, err = mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Close releases the source and database handles.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

// MigrateURL rewrites a postgres:// URL to the pgx5:// scheme used by the
// golang-migrate pgx/v5 driver.
func MigrateURL(databaseURL string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}
