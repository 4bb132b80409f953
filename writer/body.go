package writer

// Body is an exportable payload. Every concrete representation (string,
// byte slice, deferred producer) materializes to a byte sequence through the
// single Bytes operation.
type Body interface {
	Bytes() ([]byte, error)
}

// StringBody is a text payload.
type StringBody string

func (b StringBody) Bytes() ([]byte, error) {
	return []byte(b), nil
}

// BytesBody is a raw byte payload.
type BytesBody []byte

func (b BytesBody) Bytes() ([]byte, error) {
	return b, nil
}

// LazyBody defers payload production until export time.
type LazyBody func() ([]byte, error)

func (b LazyBody) Bytes() ([]byte, error) {
	return b()
}
