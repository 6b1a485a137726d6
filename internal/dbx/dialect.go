package dbx

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect identifies the SQL flavour spoken by the connected database.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "pgx"
)

// ParseDialect maps a database/sql driver name to a Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "pgx", "postgres", "postgresql":
		return Postgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// DriverName is the name the dialect's driver registers with database/sql.
func (d Dialect) DriverName() string {
	return string(d)
}

// GooseDialect is the dialect name understood by goose.
func (d Dialect) GooseDialect() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite3"
}

// Rebind rewrites '?' placeholders into the dialect's native form.
// Queries are written with '?' throughout; PostgreSQL needs $1, $2, ...
// Question marks inside single-quoted literals or double-quoted identifiers
// are left alone.
func (d Dialect) Rebind(query string) string {
	if d != Postgres || !strings.Contains(query, "?") {
		return query
	}

	var (
		b     strings.Builder
		n     int
		quote rune
	)
	b.Grow(len(query) + 8)

	for _, r := range query {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '?':
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
