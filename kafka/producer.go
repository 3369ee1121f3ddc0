package kafka

import (
	"context"
)

// Producer accepts fully-built records for delivery. Implementations
// own routing, batching and delivery guarantees; callers only promise
// that the records they hand over passed record construction.
type Producer interface {
	Send(ctx context.Context, rec ProduceRecord) error
	Flush(ctx context.Context) error
	Close()
}
