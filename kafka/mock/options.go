package mockkafka

import (
	"github.com/hugolhafner/go-produce/kafka"
	"github.com/hugolhafner/go-produce/logger"
)

// Option is a functional option for configuring a mock Producer.
type Option func(*Producer)

// WithSendError configures an error to be returned by all Send calls.
func WithSendError(err error) Option {
	return func(p *Producer) {
		p.sendErr = func(kafka.ProduceRecord) error { return err }
	}
}

// WithSendErrorFunc decides per record whether Send fails.
// Returning nil lets the record through.
func WithSendErrorFunc(f func(rec kafka.ProduceRecord) error) Option {
	return func(p *Producer) {
		p.sendErr = f
	}
}

// WithLogger attaches a logger; sends are logged at debug level.
func WithLogger(l logger.Logger) Option {
	return func(p *Producer) {
		p.log = l
	}
}
