package configs

// Funding configures the crowdfunding engine.
type Funding struct {
	// AdminKey gates the administrative withdraw entry point. Callers
	// must present it in the X-Admin-Key header. An empty key denies all
	// withdrawals; the default is only suitable for local development.
	AdminKey string `env:"ADMIN_KEY" envDefault:"admin-dev-key"`
}
