package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL    string
	AdminKey     string
	AdminKeyFile string
	Output       string
	Verbose      bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:    getEnvOrDefault("WORDPARTY_SERVER", "http://localhost:8080"),
		AdminKey:     os.Getenv("WORDPARTY_ADMIN_KEY"),
		AdminKeyFile: getEnvOrDefault("WORDPARTY_ADMIN_KEY_FILE", defaultAdminKeyFile()),
		Output:       "text",
		Verbose:      false,
	}
}

// LoadAdminKey loads the admin key from file if not already set
func (c *Config) LoadAdminKey() error {
	if c.AdminKey != "" {
		return nil
	}

	data, err := os.ReadFile(c.AdminKeyFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No key file is fine for read-only commands
		}
		return err
	}

	c.AdminKey = string(data)
	return nil
}

func defaultAdminKeyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordparty/admin-key"
	}
	return filepath.Join(home, ".wordparty", "admin-key")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
