package http

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func TestBody(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		body := EmptyBody()
		require.Equal(t, BodyEmpty, body.Kind())
		require.Equal(t, SizeHint{Chunked: false, Size: 0}, body.Size())
	})

	t.Run("sized", func(t *testing.T) {
		body := StringBody("Hello, world!")
		require.Equal(t, BodySized, body.Kind())
		require.Equal(t, SizeHint{Chunked: false, Size: 13}, body.Size())
		require.Equal(t, "Hello, world!", string(body.Bytes()))
	})

	t.Run("zero-length slice collapses to empty", func(t *testing.T) {
		require.Equal(t, BodyEmpty, BytesBody(nil).Kind())
		require.Equal(t, BodyEmpty, BytesBody([]byte{}).Kind())
	})

	t.Run("sized is zero-copy", func(t *testing.T) {
		buff := []byte("mutable")
		body := BytesBody(buff)
		buff[0] = 'M'
		require.Equal(t, "Mutable", string(body.Bytes()))
	})

	t.Run("stream", func(t *testing.T) {
		body := StreamBody(StreamOf([]byte("a")))
		require.Equal(t, BodyStream, body.Kind())
		require.True(t, body.Size().Chunked)
		require.Nil(t, body.Bytes())
	})
}

func TestStreamOf(t *testing.T) {
	stream := StreamOf([]byte("Hello"), []byte(", world"))

	chunk, err := stream.Next()
	require.NoError(t, err)
	require.Equal(t, "Hello", string(chunk))

	chunk, err = stream.Next()
	require.NoError(t, err)
	require.Equal(t, ", world", string(chunk))

	_, err = stream.Next()
	require.ErrorIs(t, err, io.EOF)
	// exhausted for good
	_, err = stream.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderStream(t *testing.T) {
	t.Run("drains the reader", func(t *testing.T) {
		payload := uniuri.NewLen(3 * readerStreamChunkSize / 2)
		stream := NewReaderStream(bytes.NewBufferString(payload))

		var drained []byte
		for {
			chunk, err := stream.Next()
			if err == io.EOF {
				break
			}

			require.NoError(t, err)
			drained = append(drained, chunk...)
		}

		require.Equal(t, payload, string(drained))
	})

	t.Run("empty reader", func(t *testing.T) {
		stream := NewReaderStream(bytes.NewBuffer(nil))
		_, err := stream.Next()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("data and EOF in one read", func(t *testing.T) {
		stream := NewReaderStream(&eagerEOFReader{payload: "all at once"})

		chunk, err := stream.Next()
		require.NoError(t, err)
		require.Equal(t, "all at once", string(chunk))

		_, err = stream.Next()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("mid-stream fault is forwarded", func(t *testing.T) {
		stream := NewReaderStream(faultyReader{})
		_, err := stream.Next()
		require.ErrorIs(t, err, errReaderBroken)
	})
}

// eagerEOFReader hands out its whole payload together with io.EOF on the
// first Read, as io.Reader implementations are allowed to.
type eagerEOFReader struct {
	payload string
	done    bool
}

func (e *eagerEOFReader) Read(b []byte) (n int, err error) {
	if e.done {
		return 0, io.EOF
	}

	e.done = true
	return copy(b, e.payload), io.EOF
}

var errReaderBroken = errors.New("the pipe burst")

type faultyReader struct{}

func (faultyReader) Read([]byte) (int, error) {
	return 0, errReaderBroken
}
