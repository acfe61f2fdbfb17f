// Package config handles configuration for the user directory,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

// Config holds runtime settings for the directory application.
//
// Fields:
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory backend.
//   - AMQPURL: RabbitMQ connection URL for the SMS gateway queue. Empty
//     selects the log-only notifier.
//   - SMSQueue: name of the durable queue access codes are published to.
type Config struct {
	DatabaseDSN string `env:"DATABASE_DSN" json:"database_dsn"`
	AMQPURL     string `env:"AMQP_URL" json:"amqp_url"`
	SMSQueue    string `env:"SMS_QUEUE" json:"sms_queue"`
}

// LoadDefaults populates Config with development defaults: in-memory
// directory, log-only notifier.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = ""
	c.AMQPURL = ""
	c.SMSQueue = "sms-codes"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
