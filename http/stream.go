package http

import "io"

// Stream is a pull-based producer of body chunks. Next returns the next chunk
// of the payload, io.EOF past the last one, or the fault which interrupted
// production. The sequence is finite, belongs to a single consumer and cannot
// be restarted; whether the returned chunk stays valid after the following
// Next call is up to the implementation. Abandoning a stream before
// exhaustion is allowed and requires no cleanup here.
type Stream interface {
	Next() ([]byte, error)
}

const readerStreamChunkSize = 4096

type readerStream struct {
	reader io.Reader
	buff   []byte
}

// NewReaderStream adapts an io.Reader into a Stream. The returned chunks
// share a single buffer, so each is valid only until the next pull.
func NewReaderStream(reader io.Reader) Stream {
	return &readerStream{
		reader: reader,
		buff:   make([]byte, readerStreamChunkSize),
	}
}

func (r *readerStream) Next() ([]byte, error) {
	n, err := r.reader.Read(r.buff)
	if n > 0 {
		// the reader is allowed to return both data and io.EOF at once. Hand
		// the data out first, the next pull will report the EOF alone
		return r.buff[:n], nil
	}

	if err == nil {
		err = io.EOF
	}

	return nil, err
}

type chunksStream struct {
	chunks [][]byte
}

// StreamOf returns a Stream over the passed chunks. Mostly useful in tests
// and for payloads which are already in memory yet must be rendered chunked.
func StreamOf(chunks ...[]byte) Stream {
	return &chunksStream{chunks: chunks}
}

func (c *chunksStream) Next() ([]byte, error) {
	if len(c.chunks) == 0 {
		return nil, io.EOF
	}

	chunk := c.chunks[0]
	c.chunks = c.chunks[1:]

	return chunk, nil
}
