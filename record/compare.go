package record

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Equal reports value equality over topic, key, value, partition,
// timestamp and headers. Keys and values are compared with
// reflect.DeepEqual so that non-comparable types ([]byte payloads,
// structs holding slices) still compare by content. Absence is
// tolerated: two records with no key are equal on the key field
// whatever their zero K looks like.
func (r Record[K, V]) Equal(other Record[K, V]) bool {
	if r.topic != other.topic || r.partition != other.partition {
		return false
	}

	if r.hasKey != other.hasKey {
		return false
	}
	if r.hasKey && !reflect.DeepEqual(r.key, other.key) {
		return false
	}

	if !reflect.DeepEqual(r.value, other.value) {
		return false
	}

	if r.hasTime != other.hasTime {
		return false
	}
	if r.hasTime && !r.timestamp.Equal(other.timestamp) {
		return false
	}

	return headersEqual(r.headers, other.headers)
}

// Hash returns a 64-bit hash combining the same fields Equal compares,
// so records that are Equal always hash identically. Absent key and
// timestamp contribute a fixed zero sentinel byte.
func (r Record[K, V]) Hash() uint64 {
	d := xxhash.New()

	_, _ = d.WriteString(r.topic)

	if r.hasKey {
		_, _ = d.Write([]byte{1})
		_, _ = fmt.Fprintf(d, "%v", deref(r.key))
	} else {
		_, _ = d.Write([]byte{0})
	}

	_, _ = fmt.Fprintf(d, "%v", deref(r.value))

	var p [4]byte
	binary.BigEndian.PutUint32(p[:], uint32(r.partition))
	_, _ = d.Write(p[:])

	if r.hasTime {
		var t [9]byte
		t[0] = 1
		binary.BigEndian.PutUint64(t[1:], uint64(r.timestamp.UnixNano()))
		_, _ = d.Write(t[:])
	} else {
		_, _ = d.Write([]byte{0})
	}

	for _, h := range r.headers {
		_, _ = d.WriteString(h.Key)
		_, _ = d.Write(h.Value)
	}

	return d.Sum64()
}

// String renders the record for logs and debugging. The output is
// deterministic for equal records but is not a wire format and is
// never parsed back.
func (r Record[K, V]) String() string {
	partition := "any"
	if r.partition != PartitionAny {
		partition = strconv.FormatInt(int64(r.partition), 10)
	}

	key := "<absent>"
	if r.hasKey {
		key = fmt.Sprintf("%v", deref(r.key))
	}

	timestamp := "<absent>"
	if r.hasTime {
		timestamp = r.timestamp.UTC().Format(time.RFC3339Nano)
	}

	return fmt.Sprintf(
		"Record(topic=%s, partition=%s, key=%s, value=%v, timestamp=%s)",
		r.topic, partition, key, deref(r.value), timestamp,
	)
}

// deref follows pointers to the value they point at, so Hash and
// String see the same representation Equal compares: DeepEqual
// dereferences pointers, while %v would print their addresses.
// Nil pointers are returned as-is and render as <nil>.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return v
	}
	return rv.Interface()
}
