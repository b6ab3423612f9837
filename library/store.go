package library

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

// Game is one entry of the catalog.
type Game struct {
	ID      int64
	Title   string
	Path    string
	Artwork string
}

// Store keeps the scanned catalog in a sqlite file.
type Store struct {
	db *sql.DB
}

func initStore(db *sql.DB) error {
	sqlStmt := `
	create table if not exists games(
		id integer primary key autoincrement,
		title text not null,
		path text not null unique,
		artwork text not null default ''
	);`
	if _, err := db.Exec(sqlStmt); err != nil {
		slog.Error("could not create games table", "error", err)
		return err
	}

	sqlStmt = `create index if not exists games_titleix on games (title collate nocase);`
	if _, err := db.Exec(sqlStmt); err != nil {
		slog.Error("could not create games index", "error", err)
		return err
	}
	return nil
}

// Open connects to the catalog at path, creating it when missing.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	if err := initStore(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init catalog %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Replace swaps the whole catalog for games in one transaction.
func (s *Store) Replace(games []Game) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`delete from games`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`insert into games(title, path, artwork) values(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, g := range games {
		if _, err := stmt.Exec(g.Title, g.Path, g.Artwork); err != nil {
			return fmt.Errorf("insert %s: %w", g.Path, err)
		}
	}
	return tx.Commit()
}

// Games returns the catalog ordered by title.
func (s *Store) Games() ([]Game, error) {
	rows, err := s.db.Query(
		`select id, title, path, artwork
		from games
		order by title collate nocase, path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]Game, 0)
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.ID, &g.Title, &g.Path, &g.Artwork); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`select count(*) from games`).Scan(&n)
	return n, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
