package otel

import (
	"go.opentelemetry.io/otel/propagation"

	"github.com/hugolhafner/go-produce/kafka"
)

var _ propagation.TextMapCarrier = HeadersCarrier{}

// HeadersCarrier adapts a record's headers to the OpenTelemetry
// TextMapCarrier interface, so trace context can be injected into a
// record before it is handed to a producer and extracted again on the
// consuming side.
type HeadersCarrier struct {
	Headers *[]kafka.Header
}

func NewHeadersCarrier(headers *[]kafka.Header) HeadersCarrier {
	return HeadersCarrier{Headers: headers}
}

func (c HeadersCarrier) Get(key string) string {
	for _, h := range *c.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// Set overwrites every existing header with the same key, or appends
// when none exists. Kafka permits duplicate keys, but propagation
// expects one value per key.
func (c HeadersCarrier) Set(key, value string) {
	found := false
	for i, h := range *c.Headers {
		if h.Key == key {
			(*c.Headers)[i].Value = []byte(value)
			found = true
		}
	}

	if !found {
		*c.Headers = append(*c.Headers, kafka.Header{Key: key, Value: []byte(value)})
	}
}

func (c HeadersCarrier) Keys() []string {
	keys := make([]string, len(*c.Headers))
	for i, h := range *c.Headers {
		keys[i] = h.Key
	}
	return keys
}
