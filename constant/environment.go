package constant

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Storage backends selectable through DB_BACKEND.
const (
	BackendSQLite   = "sqlite"
	BackendLibSQL   = "libsql"
	BackendMySQL    = "mysql"
	BackendPostgres = "postgres"
)
