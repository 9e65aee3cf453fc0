package sqldoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect names accepted by Open.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// dialect holds the statements that differ between SQL engines. Queries are
// written with "?" placeholders and rebound for engines that number them.
type dialect struct {
	name       string
	driverName string
	numbered   bool
	docType    string
	// replaceSet merges title, description and updatedAt into the stored
	// document, in that argument order.
	replaceSet string
}

var dialects = map[string]dialect{
	DialectSQLite: {
		name:       DialectSQLite,
		driverName: "sqlite",
		docType:    "TEXT",
		replaceSet: "json_set(data, '$.title', ?, '$.description', ?, '$.updatedAt', ?)",
	},
	DialectPostgres: {
		name:       DialectPostgres,
		driverName: "pgx",
		numbered:   true,
		docType:    "JSONB",
		replaceSet: "data || jsonb_build_object('title', ?::text, 'description', ?::text, 'updatedAt', ?::text)",
	},
}

func lookupDialect(name string) (dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return dialect{}, fmt.Errorf("unsupported sql dialect %q", name)
	}
	return d, nil
}

// rebind rewrites "?" placeholders to "$1", "$2", ... for numbered dialects.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// statements renders every query used by Store for the given table.
type statements struct {
	create  string
	index   string
	list    string
	insert  string
	replace string
	delete  string
}

func (d dialect) statements(table string) statements {
	return statements{
		create: fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s (id TEXT PRIMARY KEY, created_at BIGINT NOT NULL, data %s NOT NULL)",
			table, d.docType),
		index: fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS idx_%s_created_at ON %s (created_at DESC, id DESC)",
			table, table),
		list: fmt.Sprintf(
			"SELECT data FROM %s ORDER BY created_at DESC, id DESC",
			table),
		insert: d.rebind(fmt.Sprintf(
			"INSERT INTO %s (id, created_at, data) VALUES (?, ?, ?)",
			table)),
		replace: d.rebind(fmt.Sprintf(
			"UPDATE %s SET data = %s WHERE id = ? RETURNING data",
			table, d.replaceSet)),
		delete: d.rebind(fmt.Sprintf(
			"DELETE FROM %s WHERE id = ? RETURNING data",
			table)),
	}
}
