package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	writerBatchTimeout = 50 * time.Millisecond
	writerWriteTimeout = 5 * time.Second
)

// Message is one domain event. Value is encoded as JSON.
type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage(topic string) (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Topic: topic,
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// TopicName prefixes topic so several deployments can share one cluster.
func TopicName(prefix, topic string) string {
	if prefix == "" {
		return topic
	}

	return prefix + "." + topic
}

// Publisher emits domain events. Publishing is best-effort: callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type publisherImpl struct {
	prefix string
	writer *kafkaGo.Writer
	otel   otel.Otel
}

type noopPublisher struct{}

// New returns a publisher writing to KAFKA_BROKERS, or a no-op one when KAFKA_ENABLE is off.
func New(config *config.Config, otl otel.Otel) Publisher {
	if !config.Kafka.Enable || len(config.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, domain events will not be published")

		return noopPublisher{}
	}

	transport := &kafkaGo.Transport{}
	if config.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
		Balancer:               &kafkaGo.Hash{},
		Transport:              transport,
		AllowAutoTopicCreation: true,
		BatchTimeout:           writerBatchTimeout,
		WriteTimeout:           writerWriteTimeout,
		Async:                  true,
		Completion: func(messages []kafkaGo.Message, err error) {
			if err != nil {
				log.Error().Err(err).Int("count", len(messages)).Msg("Failed to deliver messages to Kafka")
			}
		},
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka publisher initialized")

	return &publisherImpl{
		prefix: config.Kafka.TopicPrefix,
		writer: writer,
		otel:   otl,
	}
}

func (k *publisherImpl) Publish(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	topic = TopicName(k.prefix, topic)
	scope.SetAttribute("messaging.destination", topic)

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage(topic)
		if err != nil {
			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	if err = k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Queued messages for Kafka.")

	return nil
}

func (k *publisherImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}

func (noopPublisher) Publish(context.Context, string, ...Message) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
