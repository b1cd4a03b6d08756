package migration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var defaultDirs = []string{
	"./db/migrations",
	"/app/db/migrations",
}

// ResolveDir returns the first existing directory among preferred and the default locations.
func ResolveDir(preferred string) (string, error) {
	candidates := append([]string{strings.TrimSpace(preferred)}, defaultDirs...)
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked %q, %s)", preferred, strings.Join(defaultDirs, ", "))
}

// New opens a migrator over the SQL files in dir.
func New(dbURL, dir string) (*migrate.Migrate, string, error) {
	dbURL = strings.TrimSpace(dbURL)
	if dbURL == "" {
		return nil, "", fmt.Errorf("database url is required")
	}

	resolved, err := ResolveDir(dir)
	if err != nil {
		return nil, "", err
	}

	sourceURL := "file://" + filepath.ToSlash(resolved)
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return nil, "", fmt.Errorf("create migrator: %w", err)
	}
	return m, sourceURL, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func Up(dbURL, dir string) (applied bool, err error) {
	m, _, err := New(dbURL, dir)
	if err != nil {
		return false, err
	}
	defer func() {
		if closeErr := Close(m); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("apply migrations: %w", err)
	}
	return true, nil
}

func Close(m *migrate.Migrate) error {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		return fmt.Errorf("close migration source: %w", srcErr)
	}
	if dbErr != nil {
		return fmt.Errorf("close migration db: %w", dbErr)
	}
	return nil
}
