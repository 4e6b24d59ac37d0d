package kafka

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

// Envelope is the wire form of one load stream event.
type Envelope struct {
	LoadID     int64           `json:"load_id"`
	Kind       string          `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Producer publishes load lifecycle events to a single topic, keyed by
// load id so per-load ordering survives partitioning.
type Producer struct {
	sp    sarama.SyncProducer
	topic string
}

// NewProducer creates a new Kafka producer. Returns nil when the broker
// list or topic is not configured; a nil Producer publishes nothing.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	sp, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{sp: sp, topic: topic}, nil
}

// Publish sends one envelope and waits for the broker ack.
func (p *Producer) Publish(env Envelope) error {
	if p == nil {
		return nil
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return Permanent(err)
	}

	_, _, err = p.sp.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(env.LoadID, 10)),
		Value: sarama.ByteEncoder(raw),
	})
	return err
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.sp.Close()
}
