// Package sqlite opens and migrates the SQLite backend of kbooks using the
// pure Go modernc.org/sqlite driver.
//
// Open returns a *sql.DB limited to one connection: SQLite allows a single
// writer, and ":memory:" databases are private to the connection that created
// them. Migrate applies the embedded goose migrations.
package sqlite
