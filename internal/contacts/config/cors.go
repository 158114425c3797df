package config

// CORSConfig представляет конфигурацию CORS для HTTP API.
// По умолчанию разрешены два origin фронтенда.
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" env:"CONTACTS_CORS_ALLOW_ORIGINS" env-default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods []string `yaml:"allow_methods" env:"CONTACTS_CORS_ALLOW_METHODS" env-default:"GET,POST,PUT,DELETE"`
	AllowHeaders []string `yaml:"allow_headers" env:"CONTACTS_CORS_ALLOW_HEADERS" env-default:"Content-Type"`
}
