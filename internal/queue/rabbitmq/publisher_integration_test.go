//go:build integration

package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NisaargPendal/local-clipboard-share/internal/config"
)

func TestPublisherIntegration(t *testing.T) {
	ctx := context.Background()
	amqpURL, cleanup := setupRabbitMQContainer(t, ctx)
	defer cleanup()

	cfg := &config.Config{
		RabbitMQURL:       amqpURL,
		RabbitExchange:    "clipboard",
		RabbitQueue:       "clipboard.events",
		RabbitRoutingKey:  "entry.created",
		RabbitConsumerTag: "clipboard-consumer",
	}

	publisher := NewPublisher(cfg, zap.NewNop())

	conn, err := amqp.Dial(amqpURL)
	require.NoError(t, err)
	defer conn.Close()

	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	err = ch.ExchangeDeclare(cfg.RabbitExchange, "topic", true, false, false, false, nil)
	require.NoError(t, err)
	_, err = ch.QueueDeclare(cfg.RabbitQueue, true, false, false, false, nil)
	require.NoError(t, err)
	err = ch.QueueBind(cfg.RabbitQueue, cfg.RabbitRoutingKey, cfg.RabbitExchange, false, nil)
	require.NoError(t, err)

	deliveries, err := ch.Consume(cfg.RabbitQueue, "publisher-test", true, false, false, false, nil)
	require.NoError(t, err)

	event := map[string]string{
		"id":        "ab12cd34",
		"content":   "integration payload",
		"timestamp": "marker",
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	err = publisher.Publish(ctx, body, cfg.RabbitRoutingKey)
	require.NoError(t, err)

	select {
	case msg := <-deliveries:
		var got map[string]string
		require.NoError(t, json.Unmarshal(msg.Body, &got))
		require.Equal(t, event["id"], got["id"])
		require.Equal(t, event["content"], got["content"])
	case <-time.After(5 * time.Second):
		t.Fatalf("timeout waiting for published message")
	}
}
