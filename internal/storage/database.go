package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Database 基于 SQLite 的存储槽实现
type Database struct {
	db *sql.DB
}

func NewDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	database := &Database{db: db}
	if err := database.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return database, nil
}

func (d *Database) initTables() error {
	// 创建存储槽表
	_, err := d.db.Exec(`
        CREATE TABLE IF NOT EXISTS storage_slots (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at DATETIME NOT NULL
        )
    `)
	if err != nil {
		return err
	}

	// 旧表没有 updated_at 列时补上，已有行记为 1970-01-01
	// （ALTER TABLE 添加 NOT NULL 列必须带常量默认值）
	var hasUpdatedAt bool
	err = d.db.QueryRow(`
        SELECT COUNT(*) > 0
        FROM pragma_table_info('storage_slots')
        WHERE name = 'updated_at'
    `).Scan(&hasUpdatedAt)
	if err != nil {
		return err
	}

	if !hasUpdatedAt {
		_, err = d.db.Exec(`
            ALTER TABLE storage_slots
            ADD COLUMN updated_at DATETIME NOT NULL DEFAULT '1970-01-01 00:00:00'
        `)
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *Database) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := d.db.QueryRowContext(ctx, `
        SELECT value FROM storage_slots WHERE key = ?
    `, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (d *Database) Set(ctx context.Context, key string, value []byte) error {
	_, err := d.db.ExecContext(ctx, `
        INSERT INTO storage_slots (key, value, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
    `, key, string(value), time.Now())
	return err
}

// UpdatedAt 返回存储槽最后一次写入的时间
func (d *Database) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var updatedAt time.Time
	err := d.db.QueryRowContext(ctx, `
        SELECT updated_at FROM storage_slots WHERE key = ?
    `, key).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrSlotNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return updatedAt, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}
