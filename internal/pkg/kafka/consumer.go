package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IBM/sarama"

	"portal/internal/pkg/config"
	"portal/pkg/logger"
	"portal/pkg/retrier"
	"portal/pkg/retrier/backoff_adapter"
)

type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

// Brokers разбирает список брокеров через запятую.
func Brokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func NewSaramaConfig(cfg config.Sarama) (*sarama.Config, error) {
	version, err := sarama.ParseKafkaVersion(cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Version, err)
	}

	sc := sarama.NewConfig()
	sc.Version = version
	sc.Consumer.Offsets.Initial = sarama.OffsetOldest
	sc.Consumer.Offsets.AutoCommit.Enable = cfg.ConsumerOffsetsAutocommit
	sc.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	return sc, nil
}

// NewConsumer подключается к Kafka с ретраями и готовит группу потребителей топика геопозиций.
func NewConsumer(ctx context.Context, log logger.Logger, cfg config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers := Brokers(cfg.Brokers)
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}

	saramaConfig, err := NewSaramaConfig(cfg.Sarama)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topic", cfg.Topic),
	)

	if err := ping(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, err
	}

	group, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		group:   group,
		topics:  []string{cfg.Topic},
		handler: handler,
	}, nil
}

// Start блокирует вызывающего до отмены ctx или ошибки группы.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	for {
		if err := c.group.Consume(ctx, c.topics, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.log.With(
				logger.NewField("error", err),
			).Error("consume")
			return fmt.Errorf("consume: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Info("kafka consumer stopped")
			return nil
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

func ping(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	var attempt uint64
	err := backoff_adapter.New(retrier.StartupConfig()).ExecuteWithContext(ctx, func(context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting kafka connection")

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.With(
					logger.NewField("error", err),
				).Warn("close kafka probe client")
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		return fmt.Errorf("connect to kafka after %d attempts: %w", attempt, err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("kafka connection established")
	return nil
}
