package mockkafka

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertSentCount verifies that exactly n records were sent.
func (p *Producer) AssertSentCount(tb testing.TB, expected int) {
	tb.Helper()

	actual := len(p.Records())
	require.Equal(tb, expected, actual, "expected %d records, got %d", expected, actual)
}

// AssertSentCountFor verifies that exactly n records were sent to a topic.
func (p *Producer) AssertSentCountFor(tb testing.TB, topic string, expected int) {
	tb.Helper()

	actual := len(p.RecordsFor(topic))
	require.Equal(tb, expected, actual, "expected %d records sent to topic %q, got %d", expected, topic, actual)
}

// AssertSent verifies that a record with the given key and value was sent to the topic.
func (p *Producer) AssertSent(tb testing.TB, topic string, key, value []byte) {
	tb.Helper()

	for _, r := range p.RecordsFor(topic) {
		if bytes.Equal(r.Key, key) && bytes.Equal(r.Value, value) {
			return
		}
	}

	tb.Errorf(
		"expected record with key=%q value=%q to be sent to topic %q, but it was not found",
		string(key), string(value), topic,
	)
}
