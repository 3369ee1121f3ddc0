package record

import (
	"time"
)

// PartitionAny leaves partition assignment to the producer client,
// which may hash the key or round-robin when no key is present either.
const PartitionAny int32 = -1

// Record is a single outbound message: the topic it is destined for,
// the payload it carries, and optionally a key, an explicit partition
// and a timestamp. Every Record that exists passed validation in New,
// and all fields are read-only afterwards, so instances can be shared
// freely across goroutines.
type Record[K, V any] struct {
	topic     string
	key       K
	hasKey    bool
	value     V
	partition int32
	hasTime   bool
	timestamp time.Time
	headers   []Header
}

// Option configures optional fields of a Record before validation.
type Option[K, V any] func(*Record[K, V])

// WithKey attaches a key to the record. A record without a key is a
// distinct state, not a record with a zero key.
func WithKey[K, V any](key K) Option[K, V] {
	return func(r *Record[K, V]) {
		r.key = key
		r.hasKey = true
	}
}

// WithPartition pins the record to an explicit partition.
// PartitionAny is accepted and equivalent to not calling WithPartition.
func WithPartition[K, V any](partition int32) Option[K, V] {
	return func(r *Record[K, V]) {
		r.partition = partition
	}
}

// WithTimestamp sets the record timestamp. Without it the producer
// client assigns a timestamp at send time.
func WithTimestamp[K, V any](ts time.Time) Option[K, V] {
	return func(r *Record[K, V]) {
		r.timestamp = ts
		r.hasTime = true
	}
}

// WithHeader appends a header. Repeated keys are allowed and order is
// preserved, matching Kafka header semantics.
func WithHeader[K, V any](key string, value []byte) Option[K, V] {
	return func(r *Record[K, V]) {
		r.headers = append(r.headers, Header{Key: key, Value: value})
	}
}

// New is the canonical constructor. It validates before returning:
// a non-empty topic, a timestamp that is either absent or a real
// instant at or after the unix epoch, and a partition that is either
// PartitionAny or non-negative. On failure the zero Record is returned
// together with an *InvalidArgumentError, so no partially built record
// ever escapes.
func New[K, V any](topic string, value V, opts ...Option[K, V]) (Record[K, V], error) {
	r := Record[K, V]{
		topic:     topic,
		value:     value,
		partition: PartitionAny,
	}

	for _, opt := range opts {
		opt(&r)
	}

	if err := r.validate(); err != nil {
		return Record[K, V]{}, err
	}

	return r, nil
}

// NewKeyed builds a keyed record. It routes through New and is
// validated identically.
func NewKeyed[K, V any](topic string, key K, value V, opts ...Option[K, V]) (Record[K, V], error) {
	return New(topic, value, append([]Option[K, V]{WithKey[K, V](key)}, opts...)...)
}

// Must unwraps a constructor result, panicking on error. Intended for
// tests and statically known-good records.
func Must[K, V any](r Record[K, V], err error) Record[K, V] {
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Record[K, V]) validate() error {
	if r.topic == "" {
		return &InvalidArgumentError{Field: "topic", Reason: "must be non-empty"}
	}

	if r.hasTime && (r.timestamp.IsZero() || r.timestamp.Before(time.Unix(0, 0))) {
		return &InvalidArgumentError{Field: "timestamp", Reason: "must be a real instant at or after the unix epoch, or absent"}
	}

	if r.partition < PartitionAny {
		return &InvalidArgumentError{Field: "partition", Reason: "must be non-negative or PartitionAny"}
	}

	return nil
}

// Topic returns the destination topic. Never empty.
func (r Record[K, V]) Topic() string {
	return r.topic
}

// Key returns the record key. It is the zero K when HasKey is false.
func (r Record[K, V]) Key() K {
	return r.key
}

// HasKey reports whether a key was supplied at construction.
func (r Record[K, V]) HasKey() bool {
	return r.hasKey
}

// Value returns the record payload.
func (r Record[K, V]) Value() V {
	return r.value
}

// Partition returns the explicit partition index, or PartitionAny.
func (r Record[K, V]) Partition() int32 {
	return r.partition
}

// HasPartition reports whether the record is pinned to an explicit
// partition.
func (r Record[K, V]) HasPartition() bool {
	return r.partition != PartitionAny
}

// Timestamp returns the record timestamp. It is the zero time when
// HasTimestamp is false.
func (r Record[K, V]) Timestamp() time.Time {
	return r.timestamp
}

// HasTimestamp reports whether a timestamp was supplied at
// construction.
func (r Record[K, V]) HasTimestamp() bool {
	return r.hasTime
}

// Headers returns a deep copy of the record headers, so callers cannot
// reach back into the record through shared value buffers.
func (r Record[K, V]) Headers() []Header {
	if len(r.headers) == 0 {
		return nil
	}
	out := make([]Header, len(r.headers))
	for i, h := range r.headers {
		v := make([]byte, len(h.Value))
		copy(v, h.Value)
		out[i] = Header{Key: h.Key, Value: v}
	}
	return out
}
