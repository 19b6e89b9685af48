package typename

// Encoder defines the interface for moving extracted names through
// byte-oriented pipelines. Implementations include plain-text and
// MessagePack encoders.
type Encoder interface {
	// Encode extracts v's name and serializes it into bytes.
	Encode(v Serializable) ([]byte, error)

	// Decode reads a name from data and reconstructs v from it.
	Decode(data []byte, v Deserializable) error
}
