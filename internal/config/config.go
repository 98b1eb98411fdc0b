package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string   `env:"HTTP_PORT" envDefault:"8080"`
	MongoURL      string   `env:"MONGO_URL,required"`
	DBName        string   `env:"DB_NAME,required"`
	JWTSecret     string   `env:"JWT_SECRET" envDefault:"your-secret-key"`
	AdminUsername string   `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string   `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	RedisAddr     string   `env:"REDIS_ADDR"`
	RedisPassword string   `env:"REDIS_PASSWORD"`
	RedisDB       int      `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
