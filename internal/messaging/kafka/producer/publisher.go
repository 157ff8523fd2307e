package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ridwanlawson/sips-api/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher mengirim event domain ke Kafka. Dipakai sebagai notifikasi
// best-effort setelah data commit; bukan bagian dari transaksi.
type Publisher struct {
	writer *kafkago.Writer
	log    *zap.Logger
}

func NewPublisher(brokers []string, logger *zap.Logger) *Publisher {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Balancer:     &kafkago.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafkago.RequireOne,
	}
	return &Publisher{
		writer: writer,
		log:    logger.Named("kafka.producer"),
	}
}

func (p *Publisher) PublishExported(ctx context.Context, evt events.PayrollExported) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Topic: events.TopicPayrollExported,
		Key:   []byte(evt.BatchID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte("payroll.exported")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	p.log.Info("payroll exported event published",
		zap.String("batch_id", evt.BatchID),
		zap.Int("line_count", evt.LineCount))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
