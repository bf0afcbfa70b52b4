package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/bookstore-storefront/pkg/kafka"
	"github.com/Astemirdum/bookstore-storefront/pkg/logger"
	"github.com/Astemirdum/bookstore-storefront/pkg/server"
	"github.com/kelseyhightower/envconfig"
)

type BookstoreHTTPServer struct {
	Host string `envconfig:"BOOKSTORE_HTTP_HOST" default:"localhost"`
	Port string `envconfig:"BOOKSTORE_HTTP_PORT" default:"5000"`
	// Timeout of zero leaves upstream calls bounded only by the request context.
	Timeout time.Duration `envconfig:"BOOKSTORE_HTTP_TIMEOUT" default:"1m"`
}

type Catalog struct {
	// Locale drives the collation used by the name sorts.
	Locale string `envconfig:"CATALOG_LOCALE" default:"bn"`
}

type Session struct {
	// TTL is how long an idle session (its cart, hearts and reviews) is kept.
	TTL time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

type Config struct {
	Server              server.Config
	BookstoreHTTPServer BookstoreHTTPServer
	Catalog             Catalog
	Session             Session
	Kafka               kafka.Config
	Log                 logger.Log
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
