package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подхватывает .env и разбирает флаги процесса.
// Флаг -port имеет приоритет над переменной PORT.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	var port string
	flag.StringVar(&port, "port", "", "HTTP port of the mission API (overrides PORT)")
	flag.Parse()

	if port == "" {
		return nil
	}

	if err := os.Setenv("PORT", port); err != nil {
		return fmt.Errorf("override PORT: %w", err)
	}
	return nil
}
