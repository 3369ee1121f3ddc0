package mockkafka

import (
	"context"
	"errors"
	"sync"

	"github.com/hugolhafner/go-produce/kafka"
	"github.com/hugolhafner/go-produce/logger"
)

var _ kafka.Producer = (*Producer)(nil)

// ErrClosed is returned by Send and Flush after Close.
var ErrClosed = errors.New("producer is closed")

// Producer is an in-memory kafka.Producer for tests. It records every
// sent record and never touches a network.
type Producer struct {
	mu sync.RWMutex

	records []kafka.ProduceRecord
	flushes int
	closed  bool

	sendErr func(rec kafka.ProduceRecord) error

	log logger.Logger
}

func NewProducer(opts ...Option) *Producer {
	p := &Producer{
		records: make([]kafka.ProduceRecord, 0),
		log:     logger.NewNoop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Send records the record. The stored copy is deep, so callers reusing
// key/value buffers cannot corrupt what a test later asserts on.
func (p *Producer) Send(ctx context.Context, rec kafka.ProduceRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	if p.sendErr != nil {
		if err := p.sendErr(rec); err != nil {
			p.log.Error(
				"send failed",
				"topic", rec.Topic,
				"partition", rec.Partition,
				"error", err,
			)
			return err
		}
	}

	p.records = append(p.records, rec.Copy())
	p.log.Debug(
		"record sent",
		"topic", rec.Topic,
		"partition", rec.Partition,
		"key_bytes", len(rec.Key),
		"value_bytes", len(rec.Value),
	)

	return nil
}

func (p *Producer) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	p.flushes++
	return nil
}

func (p *Producer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
}

// Records returns a snapshot of everything sent so far.
func (p *Producer) Records() []kafka.ProduceRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]kafka.ProduceRecord, len(p.records))
	copy(out, p.records)
	return out
}

// RecordsFor returns a snapshot of everything sent to one topic.
func (p *Producer) RecordsFor(topic string) []kafka.ProduceRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []kafka.ProduceRecord
	for _, r := range p.records {
		if r.Topic == topic {
			out = append(out, r)
		}
	}
	return out
}

// Flushes returns how many times Flush succeeded.
func (p *Producer) Flushes() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.flushes
}

// Closed reports whether Close has been called.
func (p *Producer) Closed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.closed
}
