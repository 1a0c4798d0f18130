package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotelier/config"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const fetchRetryDelay = time.Second

var ErrEmptyTopic = errors.New("topic name cannot be empty")

// Message is a consumed record, detached from the client library.
type Message struct {
	Topic string
	Key   string
	Value []byte
	Time  time.Time
}

func fromKafkaMessage(msg kafkaGo.Message) Message {
	return Message{
		Topic: msg.Topic,
		Key:   string(msg.Key),
		Value: msg.Value,
		Time:  msg.Time,
	}
}

// Decode unmarshals the JSON value of a message.
func Decode[T any](msg Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return value, nil
}

// Handler processes one message. The offset is committed whether or not it returns an error.
type Handler func(ctx context.Context, message Message) error

type Client interface {
	Consume(ctx context.Context, topic string, handler Handler) error
}

type kafkaClientImpl struct {
	config *config.Config
	dialer *kafkaGo.Dialer
}

func New(config *config.Config) Client {
	dialer := &kafkaGo.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	if mechanism := saslMechanism(config); mechanism != nil {
		dialer.SASLMechanism = mechanism
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config: config,
		dialer: dialer,
	}
}

func saslMechanism(config *config.Config) sasl.Mechanism {
	if config.Kafka.SASL.Username == "" {
		return nil
	}

	return plain.Mechanism{
		Username: config.Kafka.SASL.Username,
		Password: config.Kafka.SASL.Password,
	}
}

func (k *kafkaClientImpl) reader(topic string) *kafkaGo.Reader {
	return kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     k.config.Kafka.ConsumerGroup,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.LastOffset,
	})
}

// Consume blocks until ctx is done, handing every message of topic to handler in order.
func (k *kafkaClientImpl) Consume(ctx context.Context, topic string, handler Handler) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	reader := k.reader(topic)

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to close Kafka reader.")
		}
	}()

	log.Info().Str("topic", topic).Str("group", k.config.Kafka.ConsumerGroup).Msg("Consuming Kafka topic.")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Str("topic", topic).Msg("Consumer context done.")

				return nil
			}

			log.Error().Err(err).Str("topic", topic).Msg("Failed to read message from Kafka.")

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(fetchRetryDelay):
			}

			continue
		}

		log.Info().Str("topic", topic).Str("key", string(msg.Key)).Msg("Received message from Kafka.")

		if err := handler(ctx, fromKafkaMessage(msg)); err != nil {
			log.Error().Err(err).Str("topic", topic).Int64("offset", msg.Offset).Msg("Failed to handle Kafka message.")
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to commit Kafka message.")
		}
	}
}
