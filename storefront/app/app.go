package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookstore-storefront/pkg/kafka"
	"github.com/Astemirdum/bookstore-storefront/pkg/logger"
	"github.com/Astemirdum/bookstore-storefront/pkg/server"
	"github.com/Astemirdum/bookstore-storefront/storefront/config"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/catalog"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/handler"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/notify"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/service/bookstore"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "storefront")

	notifier := notify.NewLogNotifier(log)
	var producer sarama.AsyncProducer
	if cfg.Kafka.Enabled() {
		var err error
		producer, err = kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			log.DPanic("kafka", zap.Error(err))
		} else {
			notifier = notify.Multi(notifier, notify.NewKafkaNotifier(producer, cfg.Kafka.Topic, log))
		}
	}

	h := handler.New(log,
		bookstore.NewService(log, cfg.BookstoreHTTPServer),
		catalog.NewPipeline(cfg.Catalog.Locale),
		notifier,
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go h.ExpireSessions(ctx, cfg.Session.TTL)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	stop()
	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	log.Info("Graceful shutdown finished")
	_ = log.Sync()
}
