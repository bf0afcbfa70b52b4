package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const StorefrontTopic = "storefront-events"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"storefront-events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

// EventStorefront is the payload published for every user-facing storefront event.
type EventStorefront struct {
	SessionID string    `json:"sessionId"`
	Kind      string    `json:"kind"`
	BookID    string    `json:"bookId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Successes = false
	defaultCfg.Producer.Return.Errors = true

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}
