// Package repository implements persistence over PostgreSQL using
// squirrel-built queries on a pgx connection pool.
package repository

// pgxRow is the single-row scan interface shared by QueryRow results
// and rows inside iteration loops.
type pgxRow interface {
	Scan(dest ...any) error
}
