// Package database manages the MySQL connection for the club's system of
// record (riders, events, results, chapters).
//
// It wraps GORM connection setup: DSN construction with encoded
// credentials and timeouts, connection pool limits, and an initial ping
// so a dead database surfaces at startup rather than on the first query.
package database
