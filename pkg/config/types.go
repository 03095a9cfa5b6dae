package config

import "time"

// Config representa a estrutura raiz do arquivo YAML do toolkit.
type Config struct {
	AWS     AWSConf     `yaml:"aws"`
	Logging LoggingConf `yaml:"logging"`
	Metrics MetricsConf `yaml:"metrics"`
	Ledger  LedgerConf  `yaml:"ledger"`
	Cache   CacheConf   `yaml:"cache"`
	Events  EventsConf  `yaml:"events"`
	Watch   WatchConf   `yaml:"watch"`
}

// AWSConf define a conta, região e endpoint usados pelos clientes.
type AWSConf struct {
	Region    string `yaml:"region" env:"AWS_REGION" envDefault:"us-east-1" validate:"required"`
	Endpoint  string `yaml:"endpoint" env:"GLUE_ENDPOINT" validate:"omitempty,url"`
	CatalogID string `yaml:"catalog_id" env:"GLUE_CATALOG_ID" validate:"omitempty,numeric,len=12"`
	Profile   string `yaml:"profile" env:"AWS_PROFILE"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"LOG_ENABLED" envDefault:"true"`
	Level   string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format  string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf              `yaml:"datadog"`
	Custom  []CustomMetricDefinition `yaml:"custom_definitions" validate:"dive"`
	Rules   []MetricRegistration     `yaml:"rules" validate:"dive"`
}

type DatadogConf struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"glue."`
}

// CustomMetricDefinition declara uma métrica emitida a partir de eventos de
// execução de job.
type CustomMetricDefinition struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name" validate:"required"`
	Type string `yaml:"type" validate:"required,oneof=count gauge histogram"`
}

// MetricRegistration liga uma métrica declarada a expressões CEL avaliadas
// sobre o evento.
type MetricRegistration struct {
	MetricID  string            `yaml:"metric_id" validate:"required"`
	Condition string            `yaml:"condition"`
	Value     string            `yaml:"value" validate:"required"`
	Tags      map[string]string `yaml:"tags"`
}

// LedgerConf aponta a tabela DynamoDB que guarda o histórico de execuções.
type LedgerConf struct {
	Enabled bool          `yaml:"enabled" env:"LEDGER_ENABLED"`
	Table   string        `yaml:"table" env:"LEDGER_TABLE" validate:"required_if=Enabled true"`
	TTL     time.Duration `yaml:"ttl" env:"LEDGER_TTL"`
}

type CacheConf struct {
	Enabled  bool          `yaml:"enabled" env:"CACHE_ENABLED"`
	Addr     string        `yaml:"addr" env:"REDIS_ADDR" envDefault:"localhost:6379" validate:"required_if=Enabled true"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB" validate:"gte=0"`
	TTL      time.Duration `yaml:"ttl" env:"CACHE_TTL" envDefault:"5m"`
	Prefix   string        `yaml:"prefix" env:"CACHE_PREFIX" envDefault:"glue:"`
}

type EventsConf struct {
	QueueURL    string `yaml:"queue_url" env:"EVENTS_QUEUE_URL" validate:"omitempty,url"`
	WaitSeconds int32  `yaml:"wait_seconds" env:"EVENTS_WAIT_SECONDS" envDefault:"20" validate:"gte=0,lte=20"`
	MaxMessages int32  `yaml:"max_messages" env:"EVENTS_MAX_MESSAGES" envDefault:"10" validate:"gte=1,lte=10"`
}

type WatchConf struct {
	Interval time.Duration `yaml:"interval" env:"WATCH_INTERVAL" envDefault:"30s"`
	Timeout  time.Duration `yaml:"timeout" env:"WATCH_TIMEOUT"`
}
