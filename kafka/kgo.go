package kafka

import (
	"github.com/twmb/franz-go/pkg/kgo"
)

// ToKgoRecord converts a ProduceRecord into the franz-go record shape,
// for callers producing through a kgo.Client. Pure type adaptation,
// no I/O.
func ToKgoRecord(r ProduceRecord) *kgo.Record {
	var headers []kgo.RecordHeader
	if len(r.Headers) > 0 {
		headers = make([]kgo.RecordHeader, len(r.Headers))
		for i, h := range r.Headers {
			headers[i] = kgo.RecordHeader{Key: h.Key, Value: h.Value}
		}
	}

	return &kgo.Record{
		Topic:     r.Topic,
		Key:       r.Key,
		Value:     r.Value,
		Headers:   headers,
		Partition: r.Partition,
		Timestamp: r.Timestamp,
	}
}

// FromKgoRecord converts a franz-go record back into a ProduceRecord.
func FromKgoRecord(r *kgo.Record) ProduceRecord {
	var headers []Header
	if len(r.Headers) > 0 {
		headers = make([]Header, len(r.Headers))
		for i, h := range r.Headers {
			headers[i] = Header{Key: h.Key, Value: h.Value}
		}
	}

	return ProduceRecord{
		Topic:     r.Topic,
		Key:       r.Key,
		Value:     r.Value,
		Headers:   headers,
		Partition: r.Partition,
		Timestamp: r.Timestamp,
	}
}
