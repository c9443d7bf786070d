package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	SecretKey      string `yaml:"secret_key"`
	Issuer         string `yaml:"issuer"`
	AccessTokenTTL string `yaml:"access_token_ttl"`
}

// FilesConfig : корень каталога, из которого раздаются файлы
type FilesConfig struct {
	Root string `yaml:"root"`
}

// TTL : время жизни кэша в секундах
type TTL struct {
	ShareCache int `yaml:"share_cache"`
}
