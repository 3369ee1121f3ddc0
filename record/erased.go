package record

import "time"

// ErasedRecord is the type-erased form of a Record. Go interfaces
// cannot carry generic methods, so boundaries that must accept records
// of any key and value type (test doubles, logging sinks) take this
// shape instead. Key is nil when the record had no key; Timestamp is
// the zero time when the record had none.
type ErasedRecord struct {
	Topic     string
	Key       any
	Value     any
	Partition int32
	Timestamp time.Time
	Headers   []Header
}

// Erased converts the record into its type-erased form.
func (r Record[K, V]) Erased() ErasedRecord {
	var key any
	if r.hasKey {
		key = r.key
	}

	return ErasedRecord{
		Topic:     r.topic,
		Key:       key,
		Value:     r.value,
		Partition: r.partition,
		Timestamp: r.timestamp,
		Headers:   r.Headers(),
	}
}
