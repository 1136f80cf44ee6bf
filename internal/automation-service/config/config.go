package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Elasticsearch ElasticsearchConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Mail          MailConfig
	LoadBalancer  LoadBalancerConfig
	Alert         AlertConfig
	Discord       DiscordConfig
	Monitor       MonitorConfig
	Report        ReportConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:"./log/automation-service.log"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
}

type RedisConfig struct {
	Host string `envconfig:"REDIS_HOST" default:"localhost"`
	Port int    `envconfig:"REDIS_PORT" default:"6379"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL" required:"true"`
	Password         string `envconfig:"MAIL_PASSWORD" required:"true"`
	Host             string `envconfig:"MAIL_HOST" required:"true"`
	Port             int    `envconfig:"MAIL_PORT" required:"true"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL" required:"true"`
}

type LoadBalancerConfig struct {
	DataPlanePort   int           `envconfig:"LOAD_BALANCER_DATAPLANE_PORT" default:"5555"`
	User            string        `envconfig:"LOAD_BALANCER_USER" default:"admin"`
	Password        string        `envconfig:"LOAD_BALANCER_PASSWORD"`
	RequestTimeout  time.Duration `envconfig:"LOAD_BALANCER_REQUEST_TIMEOUT" default:"5s"`
	MaxRetries      int           `envconfig:"LOAD_BALANCER_MAX_RETRIES" default:"3"`
	InitialBackoff  time.Duration `envconfig:"LOAD_BALANCER_INITIAL_BACKOFF" default:"500ms"`
	TestMode        bool          `envconfig:"LOAD_BALANCER_TEST_MODE" default:"false"`
	TestDestination string        `envconfig:"LOAD_BALANCER_TEST_DESTINATION" default:"localhost"`
}

// DestinationOverride returns the destination every replica call is redirected to, or an
// empty string when running against the real load balancers.
func (c LoadBalancerConfig) DestinationOverride() string {
	if c.TestMode {
		return c.TestDestination
	}
	return ""
}

type AlertConfig struct {
	InfoWebhookURL  string        `envconfig:"ALERT_INFO_WEBHOOK_URL"`
	ErrorWebhookURL string        `envconfig:"ALERT_ERROR_WEBHOOK_URL"`
	RequestTimeout  time.Duration `envconfig:"ALERT_REQUEST_TIMEOUT" default:"5s"`
}

type DiscordConfig struct {
	APIURL    string `envconfig:"DISCORD_API_URL" default:"https://discord.com/api/v10"`
	BotToken  string `envconfig:"DISCORD_BOT_TOKEN"`
	ChannelID string `envconfig:"DISCORD_CHANNEL_ID"`
}

const (
	RestartModeExec  = "exec"
	RestartModeKafka = "kafka"
	RestartModeRedis = "redis"
)

type MonitorConfig struct {
	RestartMode    string        `envconfig:"MONITOR_RESTART_MODE" default:"exec"`
	RestartCommand string        `envconfig:"MONITOR_RESTART_COMMAND" default:"pm2 restart monitor"`
	KafkaTopic     string        `envconfig:"MONITOR_KAFKA_TOPIC" default:"monitor-commands"`
	RedisChannel   string        `envconfig:"MONITOR_REDIS_CHANNEL" default:"monitor:restart"`
	MaxRetries     int           `envconfig:"MONITOR_RESTART_MAX_RETRIES" default:"3"`
	InitialBackoff time.Duration `envconfig:"MONITOR_RESTART_INITIAL_BACKOFF" default:"1s"`
	RestartTimeout time.Duration `envconfig:"MONITOR_RESTART_TIMEOUT" default:"30s"`
}

type ReportConfig struct {
	Schedule string `envconfig:"REPORT_SCHEDULE" default:"0 0 * * *"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
