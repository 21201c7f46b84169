package configs

import "github.com/spf13/viper"

type Conf struct {
	MongoURI           string `mapstructure:"MONGO_URI"`
	MongoDatabase      string `mapstructure:"MONGO_DATABASE"`
	RedisHost          string `mapstructure:"REDIS_HOST"`
	RedisPort          string `mapstructure:"REDIS_PORT"`
	AMQPURI            string `mapstructure:"AMQP_URI"`
	WebServerPort      string `mapstructure:"WEB_SERVER_PORT"`
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpiresHours    int    `mapstructure:"JWT_EXPIRES_HOURS"`
	GeocoderBaseURL    string `mapstructure:"GEOCODER_BASE_URL"`
	CandidateLimit     int    `mapstructure:"CANDIDATE_LIMIT"`
	RetentionHours     int    `mapstructure:"RETENTION_HOURS"`
	SweepIntervalMin   int    `mapstructure:"SWEEP_INTERVAL_MINUTES"`
	CertificateDir     string `mapstructure:"CERTIFICATE_DIR"`
	CertificateBaseURL string `mapstructure:"CERTIFICATE_BASE_URL"`
	SupportInbox       string `mapstructure:"SUPPORT_INBOX"`
	AllowResubmission  bool   `mapstructure:"ALLOW_RESUBMISSION"`
	OTELExporterAddr   string `mapstructure:"OTEL_EXPORTER_ADDR"`
}

func LoadConfig(path string) (*Conf, error) {
	var cfg *Conf

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("MONGO_DATABASE", "dispatch")
	viper.SetDefault("WEB_SERVER_PORT", "8080")
	viper.SetDefault("JWT_EXPIRES_HOURS", 24)
	viper.SetDefault("CANDIDATE_LIMIT", 10)
	viper.SetDefault("RETENTION_HOURS", 24)
	viper.SetDefault("SWEEP_INTERVAL_MINUTES", 60)
	viper.SetDefault("SUPPORT_INBOX", "support@roadassist.local")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
