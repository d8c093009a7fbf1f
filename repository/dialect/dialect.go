package dialect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/constant"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrUniqueViolation is returned by repositories when an insert collides with an existing primary key.
var ErrUniqueViolation = errors.New("unique constraint violation")

const (
	mysqlDuplicateEntry     = 1062
	postgresUniqueViolation = "23505"
	sqliteUniqueMessage     = "UNIQUE constraint failed"
)

// Dialect describes the SQL flavour spoken by one storage backend.
type Dialect struct {
	Backend    string
	DriverName string

	quote       func(ident string) string
	productsDDL string
	userDDL     string
}

var dialects = map[string]Dialect{
	constant.BackendSQLite: {
		Backend:     constant.BackendSQLite,
		DriverName:  "sqlite",
		quote:       doubleQuote,
		productsDDL: `CREATE TABLE IF NOT EXISTS products (ean13 TEXT PRIMARY KEY, name TEXT, price FLOAT, amount INTEGER)`,
		userDDL:     `CREATE TABLE IF NOT EXISTS %s (userid TEXT PRIMARY KEY, password TEXT, username TEXT)`,
	},
	constant.BackendLibSQL: {
		Backend:     constant.BackendLibSQL,
		DriverName:  "libsql",
		quote:       doubleQuote,
		productsDDL: `CREATE TABLE IF NOT EXISTS products (ean13 TEXT PRIMARY KEY, name TEXT, price FLOAT, amount INTEGER)`,
		userDDL:     `CREATE TABLE IF NOT EXISTS %s (userid TEXT PRIMARY KEY, password TEXT, username TEXT)`,
	},
	constant.BackendMySQL: {
		Backend:     constant.BackendMySQL,
		DriverName:  "mysql",
		quote:       backtick,
		productsDDL: `CREATE TABLE IF NOT EXISTS products (ean13 VARCHAR(255) PRIMARY KEY, name TEXT, price DOUBLE, amount BIGINT)`,
		userDDL:     `CREATE TABLE IF NOT EXISTS %s (userid VARCHAR(255) PRIMARY KEY, password TEXT, username TEXT)`,
	},
	constant.BackendPostgres: {
		Backend:     constant.BackendPostgres,
		DriverName:  "pgx",
		quote:       doubleQuote,
		productsDDL: `CREATE TABLE IF NOT EXISTS products (ean13 TEXT PRIMARY KEY, name TEXT, price DOUBLE PRECISION, amount BIGINT)`,
		userDDL:     `CREATE TABLE IF NOT EXISTS %s (userid TEXT PRIMARY KEY, password TEXT, username TEXT)`,
	},
}

// Lookup returns the dialect registered for a DB_BACKEND value.
func Lookup(backend string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(backend))]
	if !ok {
		return Dialect{}, fmt.Errorf("unsupported storage backend %q", backend)
	}
	return d, nil
}

// ForDriver returns the dialect matching a database/sql driver name, defaulting to SQLite.
func ForDriver(driverName string) Dialect {
	for _, d := range dialects {
		if d.DriverName == driverName {
			return d
		}
	}
	return dialects[constant.BackendSQLite]
}

// Quote quotes an identifier, needed for the reserved "user" table name.
func (d Dialect) Quote(ident string) string {
	return d.quote(ident)
}

// UserTable is the quoted name of the user table.
func (d Dialect) UserTable() string {
	return d.Quote("user")
}

// Schema lists the idempotent statements creating both tables.
func (d Dialect) Schema() []string {
	return []string{
		d.productsDDL,
		fmt.Sprintf(d.userDDL, d.UserTable()),
	}
}

// EnsureSchema creates the products and user tables when they do not exist yet.
func (d Dialect) EnsureSchema(ctx context.Context, conn *sqlx.DB) error {
	for _, stmt := range d.Schema() {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// IsUniqueViolation reports whether err is a primary-key or unique constraint failure
// from any of the supported drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUniqueViolation) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == postgresUniqueViolation
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return true
		}
	}

	// remote libsql reports constraint failures as plain text
	return strings.Contains(err.Error(), sqliteUniqueMessage)
}

// Translate maps driver-specific unique violations onto ErrUniqueViolation and leaves other errors untouched.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrUniqueViolation, err.Error())
	}
	return err
}

func doubleQuote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func backtick(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}
