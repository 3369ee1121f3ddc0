//go:build unit

package serde_test

import (
	"testing"

	"github.com/hugolhafner/go-produce/serde"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestStringSerde(t *testing.T) {
	t.Parallel()

	s := serde.String()

	data, err := s.Serialize("test-topic", "hello")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), data)

	out, err := s.Deserialize("test-topic", []byte("hello"))
	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestBytesSerde(t *testing.T) {
	t.Parallel()

	s := serde.Bytes()

	payload := []byte{0x00, 0xff, 0xfe}
	data, err := s.Serialize("test-topic", payload)
	require.NoError(t, err)
	require.Equal(t, payload, data)

	out, err := s.Deserialize("test-topic", data)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestJSONSerde(t *testing.T) {
	t.Parallel()

	type order struct {
		ID     string `json:"id"`
		Amount int    `json:"amount"`
	}

	s := serde.JSON[order]()

	data, err := s.Serialize("test-topic", order{ID: "o-1", Amount: 42})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"o-1","amount":42}`, string(data))

	out, err := s.Deserialize("test-topic", []byte(`{"id":"o-2","amount":7}`))
	require.NoError(t, err)
	require.Equal(t, order{ID: "o-2", Amount: 7}, out)

	_, err = s.Deserialize("test-topic", []byte(`{"amount":"not-a-number"}`))
	require.Error(t, err)
}

func TestJSONSerde_UnserializableValue(t *testing.T) {
	t.Parallel()

	s := serde.JSON[any]()
	_, err := s.Serialize("test-topic", func() {})
	require.Error(t, err)
}

func TestProtobufSerde(t *testing.T) {
	t.Parallel()

	s := serde.Protobuf[*wrapperspb.StringValue]()

	data, err := s.Serialize("test-topic", wrapperspb.String("hello"))
	require.NoError(t, err)

	out, err := s.Deserialize("test-topic", data)
	require.NoError(t, err)
	require.Equal(t, "hello", out.GetValue())
}

func TestProtobufSerde_InvalidData(t *testing.T) {
	t.Parallel()

	s := serde.Protobuf[*wrapperspb.StringValue]()
	_, err := s.Deserialize("test-topic", []byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}

func TestSerializerFunc(t *testing.T) {
	t.Parallel()

	var gotTopic string
	f := serde.SerializerFunc[int](
		func(topic string, value int) ([]byte, error) {
			gotTopic = topic
			return []byte{byte(value)}, nil
		},
	)

	data, err := f.Serialize("numbers", 7)
	require.NoError(t, err)
	require.Equal(t, []byte{7}, data)
	require.Equal(t, "numbers", gotTopic)
}
