package cmd

// Config carries the environment-derived settings for the service.
// All values are read as strings from the .env file; parsing happens at the
// point of use.
type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	KafkaHost               string
	KafkaNotificationsTopic string
	OtelEndpoint            string
	StaleOrderMaxAge        string
}
