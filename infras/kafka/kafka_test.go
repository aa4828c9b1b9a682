package kafka_test

import (
	"context"
	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicName(t *testing.T) {
	assert.Equal(t, "hotelier.booking.created", kafka.TopicName("hotelier", "booking.created"))
	assert.Equal(t, "booking.created", kafka.TopicName("", "booking.created"))
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "b-1",
		Value: map[string]any{"id": "b-1", "status": "confirmed"},
	}

	out, err := msg.ToKafkaMessage("hotelier.booking.created")
	require.NoError(t, err)

	assert.Equal(t, "hotelier.booking.created", out.Topic)
	assert.Equal(t, []byte("b-1"), out.Key)
	assert.JSONEq(t, `{"id":"b-1","status":"confirmed"}`, string(out.Value))

	bad := kafka.Message{Key: "x", Value: make(chan int)}
	_, err = bad.ToKafkaMessage("t")
	assert.Error(t, err)
}

func TestNew_DisabledIsNoop(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	publisher := kafka.New(cfg, mocks.NewOtel())

	assert.NoError(t, publisher.Publish(context.Background(), "booking.created", kafka.Message{Key: "k", Value: 1}))
	assert.NoError(t, publisher.Close())
}
