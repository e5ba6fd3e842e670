package main

import (
	"fmt"
	"strings"

	"github.com/dnspurge/dnspurge/adapters/store/rdb"
	"github.com/dnspurge/dnspurge/domain"
	"github.com/spf13/cobra"
)

// getDBURL extracts the db-url flag value from the command hierarchy,
// falling back to the config file.
func getDBURL(cmd *cobra.Command) string {
	if f := findFlag(cmd, "db-url"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return getConfig().DBURL
}

// buildRunRepository creates the run history repository based on db-url.
// An empty db-url disables history and yields a nil repository.
func buildRunRepository(cmd *cobra.Command) (domain.RunRepository, error) {
	dbURL := getDBURL(cmd)

	switch {
	case dbURL == "":
		return nil, nil
	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		return rdb.NewRunRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}
