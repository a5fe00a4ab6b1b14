package loader

// Published constant names.
const (
	WPEnv      = "WP_ENV"
	DBName     = "DB_NAME"
	DBUser     = "DB_USER"
	DBPassword = "DB_PASSWORD"
	DBHost     = "DB_HOST"
	DBCharset  = "DB_CHARSET"
	DBCollate  = "DB_COLLATE"

	DisableWPCron = "DISABLE_WP_CRON"
	WPSiteURL     = "WP_SITEURL"
	WPHome        = "WP_HOME"

	SESAccessKeyID     = "WPOSES_AWS_ACCESS_KEY_ID"
	SESSecretAccessKey = "WPOSES_AWS_SECRET_ACCESS_KEY"
)

// Variables read but never published.
const (
	TablePrefixVar = "TABLE_PREFIX"
)

const (
	DefaultEnvironment = "production"
	DefaultTablePrefix = "wp_"
)

type stringConstant struct {
	name     string
	fallback string
}

// databaseConstants are always published, in this order, with the fallback
// applied when the variable is absent or empty.
var databaseConstants = []stringConstant{
	{DBName, ""},
	{DBUser, ""},
	{DBPassword, ""},
	{DBHost, "localhost"},
	{DBCharset, "utf8"},
	{DBCollate, ""},
}

var sesConstants = []stringConstant{
	{SESAccessKeyID, ""},
	{SESSecretAccessKey, ""},
}

// Secret reports whether a constant holds a credential.
func Secret(name string) bool {
	switch name {
	case DBPassword, SESSecretAccessKey:
		return true
	}
	return false
}
