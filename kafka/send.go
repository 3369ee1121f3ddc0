package kafka

import (
	"context"
	"fmt"

	"github.com/hugolhafner/go-produce/record"
	"github.com/hugolhafner/go-produce/serde"
)

// Send serializes a typed record and hands it to the producer. The key
// serializer is only consulted when the record carries a key; a keyless
// record is sent with a nil key so the producer can fall back to its
// own partition assignment.
func Send[K, V any](
	ctx context.Context,
	p Producer,
	rec record.Record[K, V],
	keys serde.Serializer[K],
	values serde.Serializer[V],
) error {
	out := ProduceRecord{
		Topic:     rec.Topic(),
		Partition: rec.Partition(),
	}

	if rec.HasKey() {
		key, err := keys.Serialize(rec.Topic(), rec.Key())
		if err != nil {
			return fmt.Errorf("serialize key: %w", err)
		}
		out.Key = key
	}

	value, err := values.Serialize(rec.Topic(), rec.Value())
	if err != nil {
		return fmt.Errorf("serialize value: %w", err)
	}
	out.Value = value

	if rec.HasTimestamp() {
		out.Timestamp = rec.Timestamp()
	}

	for _, h := range rec.Headers() {
		out.Headers = append(out.Headers, Header{Key: h.Key, Value: h.Value})
	}

	return p.Send(ctx, out)
}
