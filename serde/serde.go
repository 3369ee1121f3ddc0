package serde

// Serde pairs serialization and deserialization for one type. The
// topic is passed through so schema-registry style implementations can
// key their lookups on it; the built-in serdes ignore it.
type Serde[T any] interface {
	Serializer[T]
	Deserializer[T]
}

type Serializer[T any] interface {
	Serialize(topic string, value T) ([]byte, error)
}

type Deserializer[T any] interface {
	Deserialize(topic string, data []byte) (T, error)
}

// SerializerFunc adapts a function to the Serializer interface.
type SerializerFunc[T any] func(topic string, value T) ([]byte, error)

func (f SerializerFunc[T]) Serialize(topic string, value T) ([]byte, error) {
	return f(topic, value)
}

// DeserializerFunc adapts a function to the Deserializer interface.
type DeserializerFunc[T any] func(topic string, data []byte) (T, error)

func (f DeserializerFunc[T]) Deserialize(topic string, data []byte) (T, error) {
	return f(topic, data)
}
