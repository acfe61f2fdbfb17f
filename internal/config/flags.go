package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/userdir/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN (empty: in-memory directory)
//	-m string   AMQP broker URL (empty: log-only notifier)
//	-q string   SMS gateway queue name
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with flags owned by other
// packages (such as the -c/-config file flag).
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.AMQPURL, "m", config.AMQPURL, "AMQP broker URL")
	fs.StringVar(&config.SMSQueue, "q", config.SMSQueue, "SMS gateway queue name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
