package config

// DB holds the database connection settings. GormEngine selects the
// dialector: mysql (default), postgres or sqlite.
type DB struct {
	Extras     string // extra DSN parameters, appended verbatim
	Host       string
	Port       int
	User       string
	Password   string
	Name       string // database name, or the file path for sqlite
	GormEngine string
}
