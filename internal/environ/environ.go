package environ

import "os"

// Environment is the external-variable surface the loader reads from and
// exposes parsed .env keys through.
type Environment interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error
}

type osEnvironment struct{}

// OS returns the process environment.
func OS() Environment {
	return osEnvironment{}
}

func (osEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnvironment) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

func (osEnvironment) Unsetenv(key string) error {
	return os.Unsetenv(key)
}

// Getenv returns the value of key, or "" when unset.
func Getenv(env Environment, key string) string {
	value, _ := env.LookupEnv(key)
	return value
}

// SetIfUnset writes key only when it is not already present. It reports
// whether the value was written.
func SetIfUnset(env Environment, key, value string) (bool, error) {
	if _, exists := env.LookupEnv(key); exists {
		return false, nil
	}
	if err := env.Setenv(key, value); err != nil {
		return false, err
	}
	return true, nil
}
