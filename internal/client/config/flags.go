package config

import (
	"flag"
	"os"

	"github.com/scentid/scentid-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-d string   path to the local SQLite database
//
// Arguments are filtered through flagx.FilterArgs so flags owned by other
// packages are not disturbed.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the local database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
