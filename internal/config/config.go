package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Agent     Agent
	Warehouse Warehouse
}

// Warehouse holds the BigQuery connection parameters. When ProjectID is
// empty the process falls back to the local sqlite warehouse so the agent
// stays usable without GCP credentials.
type Warehouse struct {
	ProjectID   string `env:"PROJECT_ID"`
	Region      string `env:"GOOGLE_CLOUD_REGION" envDefault:"us-central1"`
	Dataset     string `env:"BIGQUERY_DATASET" envDefault:"demo_adk"`
	OrdersTable string `env:"BIGQUERY_ORDERS_TABLE" envDefault:"orders"`
	MenuTable   string `env:"BIGQUERY_MENU_TABLE" envDefault:"menu"`
	PromosTable string `env:"BIGQUERY_PROMOS_TABLE" envDefault:"promos"`
	LocalDBPath string `env:"LOCAL_DB_PATH" envDefault:"demo.db"`
}

type Agent struct {
	Model              string `env:"AGENT_MODEL" envDefault:"gemini-2.5-flash"`
	ForceLocalFallback bool   `env:"FORCE_LOCAL_ADK_FALLBACK"`
	PaymentBaseURL     string `env:"PAYMENT_BASE_URL" envDefault:"https://pay.example.com"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
