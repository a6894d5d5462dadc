package config

// webpinFile represents the structure of the webpin.yaml configuration file.
type webpinFile struct {
	Origin       string            `yaml:"origin"`
	Lockfile     string            `yaml:"lockfile"`
	CacheDir     string            `yaml:"cache_dir"`
	Dependencies map[string]string `yaml:"dependencies"`
}

// envOverrides are environment variables that take precedence over the file.
type envOverrides struct {
	Origin   string `env:"WEBPIN_ORIGIN"`
	CacheDir string `env:"WEBPIN_CACHE_DIR"`
	Lockfile string `env:"WEBPIN_LOCKFILE"`
}
