package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подтягивает .env (если файл есть) и применяет флаги командной строки поверх окружения.
func Load() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	var (
		portFlag   string
		speedsFlag string
	)
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&speedsFlag, "speeds", "", "Vehicle speeds YAML (overrides ROUTING_SPEEDS_FILE environment variable)")
	flag.Parse()

	overrides := map[string]string{
		"PORT":                portFlag,
		"ROUTING_SPEEDS_FILE": speedsFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
