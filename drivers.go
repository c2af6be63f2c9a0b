package main

import (
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ParseDatabaseDriver picks the gorm driver for the provided database
// string. MySQL DSNs and mysql:// URLs use the MySQL driver; anything that
// looks like a file path falls back to SQLite, which is also what local
// development uses.
func ParseDatabaseDriver(dbURL string) gorm.Dialector {
	if dbURL == "" {
		return nil
	}
	if strings.HasPrefix(dbURL, "mysql://") {
		return mysql.Open(strings.TrimPrefix(dbURL, "mysql://"))
	}
	if strings.Contains(dbURL, "@tcp(") {
		return mysql.Open(dbURL)
	}
	if strings.HasPrefix(dbURL, "sqlite://") {
		return sqlite.Open(strings.TrimPrefix(dbURL, "sqlite://"))
	}
	if strings.HasSuffix(dbURL, ".db") || strings.HasSuffix(dbURL, ".sqlite") {
		return sqlite.Open(dbURL)
	}
	return nil
}
