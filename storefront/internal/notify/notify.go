package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/bookstore-storefront/pkg/kafka"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Notifier delivers transient user-facing notifications. Delivery is best
// effort and must not block the caller.
type Notifier interface {
	Notify(ctx context.Context, sessionID string, n model.Notification)
}

type logNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) Notifier {
	return &logNotifier{log: log.Named("notify")}
}

func (l *logNotifier) Notify(_ context.Context, sessionID string, n model.Notification) {
	l.log.Info(n.Title,
		zap.String("session", sessionID),
		zap.String("kind", n.Kind),
		zap.String("bookId", n.BookID),
		zap.Int64("dismissAfterMs", n.DismissAfterMs),
	)
}

type kafkaNotifier struct {
	producer sarama.AsyncProducer
	topic    string
	log      *zap.Logger
}

// NewKafkaNotifier publishes every notification to topic. Producer errors
// are drained and logged in the background until the producer is closed.
func NewKafkaNotifier(producer sarama.AsyncProducer, topic string, log *zap.Logger) Notifier {
	k := &kafkaNotifier{
		producer: producer,
		topic:    topic,
		log:      log.Named("kafka-notify"),
	}
	go func() {
		for err := range producer.Errors() {
			k.log.Warn("publish notification", zap.Error(err))
		}
	}()
	return k
}

func (k *kafkaNotifier) Notify(_ context.Context, sessionID string, n model.Notification) {
	data, err := json.Marshal(kafka.EventStorefront{
		SessionID: sessionID,
		Kind:      n.Kind,
		BookID:    n.BookID,
		Message:   n.Title,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		k.log.Warn("marshal notification", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(sessionID),
		Value: sarama.ByteEncoder(data),
	}
	select {
	case k.producer.Input() <- msg:
	default:
		k.log.Warn("producer buffer full, notification dropped",
			zap.String("session", sessionID), zap.String("bookId", n.BookID))
	}
}

type multi []Notifier

// Multi fans a notification out to every notifier in order.
func Multi(ns ...Notifier) Notifier {
	return multi(ns)
}

func (m multi) Notify(ctx context.Context, sessionID string, n model.Notification) {
	for _, nt := range m {
		nt.Notify(ctx, sessionID, n)
	}
}
