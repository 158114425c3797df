package config

// SeedConfig управляет наполнением хранилища демонстрационными данными.
// Включается только в режиме разработки.
type SeedConfig struct {
	Demo bool `yaml:"demo" env:"CONTACTS_SEED_DEMO" env-default:"false"`
}
