package repositories

import "github.com/jmoiron/sqlx"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
)

// Rebind rewrites "?" placeholders into the driver's bind style, "$1", "$2"...
// for postgres.
func Rebind(driver, query string) string {
	return sqlx.Rebind(sqlx.BindType(driver), query)
}
