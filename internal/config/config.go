package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Database   Database   `yaml:"database"`
	Submission Submission `yaml:"submission"`
	Payment    Payment    `yaml:"payment"`
	Pages      Pages      `yaml:"pages"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"20s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"fest"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

// Submission configures the spreadsheet webhook that receives registrations.
type Submission struct {
	URL           string        `yaml:"url" env:"SUBMISSION_URL" env-required:"true"`
	Timeout       time.Duration `yaml:"timeout" env-default:"15s"`
	RedirectDelay time.Duration `yaml:"redirect_delay" env-default:"1500ms"`
}

type Payment struct {
	UPIID              string        `yaml:"upi_id" env:"UPI_ID" env-default:"9131705898@ybl"`
	Currency           string        `yaml:"currency" env-default:"INR"`
	QRImage            string        `yaml:"qr_image" env-default:"/static/qr.png"`
	MaxScreenshotBytes int64         `yaml:"max_screenshot_bytes" env-default:"5242880"`
	ConfirmDelay       time.Duration `yaml:"confirm_delay" env-default:"1500ms"`
	CopiedReset        time.Duration `yaml:"copied_reset" env-default:"2s"`
	PendingTTL         time.Duration `yaml:"pending_ttl" env-default:"72h"`
	ExpiryInterval     time.Duration `yaml:"expiry_interval" env-default:"1m"`
}

type Pages struct {
	FestName  string `yaml:"fest_name" env-default:"Truba Youth Fest 2K25"`
	HomeURL   string `yaml:"home_url" env-default:"https://www.trubainstitute.ac.in"`
	StaticDir string `yaml:"static_dir" env-default:"./static/"`
}

func MustLoad() *Config {
	// .env is optional, it only seeds the environment for cleanenv
	_ = godotenv.Load()

	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("config path is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
