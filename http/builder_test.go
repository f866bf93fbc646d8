package http

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-web/lumen/http/cookie"
	"github.com/lumen-web/lumen/http/mime"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
)

func TestBuilder(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		resp := Build(status.OK).Header("X-Test", "value").Finish()
		require.Equal(t, status.OK, resp.Code())
		require.Equal(t, "value", resp.Headers().Value("X-Test"))
		require.Equal(t, BodyEmpty, requirePayload(t, resp).Kind())
		require.NoError(t, resp.Err())
	})

	t.Run("header appends, set header replaces", func(t *testing.T) {
		resp := Build(status.OK).
			Header("X-Test", "a", "b").
			Header("X-Test", "c").
			SetHeader("X-Single", "old").
			SetHeader("X-Single", "new").
			Finish()

		require.Equal(t, []string{"a", "b", "c"}, resp.Headers().Values("X-Test"))
		require.Equal(t, []string{"new"}, resp.Headers().Values("X-Single"))
	})

	t.Run("status and reason", func(t *testing.T) {
		resp := Build(status.OK).Status(status.Teapot).Finish()
		require.Equal(t, status.Teapot, resp.Code())
		require.Equal(t, status.Status("I'm a teapot"), resp.Head().Status())

		resp = Build(status.OK).Reason("Absolutely Fine").Finish()
		require.Equal(t, status.Status("Absolutely Fine"), resp.Head().Status())
	})

	t.Run("content type and length", func(t *testing.T) {
		resp := Build(status.OK).
			ContentType(mime.HTML).
			ContentLength(1234).
			Finish()

		require.Equal(t, mime.HTML, resp.Headers().Value("Content-Type"))
		require.Equal(t, "1234", resp.Headers().Value("Content-Length"))
	})

	t.Run("if", func(t *testing.T) {
		addHeader := func(b *Builder) { b.Header("X-Cond", "yes") }

		resp := Build(status.OK).
			If(false, addHeader).
			Finish()
		require.False(t, resp.Headers().Has("X-Cond"))

		resp = Build(status.OK).
			If(true, addHeader).
			Finish()
		require.Equal(t, "yes", resp.Headers().Value("X-Cond"))
	})

	t.Run("string body", func(t *testing.T) {
		resp := Build(status.OK).String("Hello, world!")
		require.Equal(t, "Hello, world!", string(requirePayload(t, resp).Bytes()))
	})

	t.Run("stream body", func(t *testing.T) {
		resp := Build(status.OK).Stream(StreamOf([]byte("chunk")))
		body := requirePayload(t, resp)
		require.Equal(t, BodyStream, body.Kind())
		require.True(t, body.Size().Chunked)
	})
}

func TestBuilderConnection(t *testing.T) {
	t.Run("force close", func(t *testing.T) {
		resp := Build(status.OK).ForceClose().Finish()
		require.False(t, resp.KeepAlive())
	})

	t.Run("keep alive", func(t *testing.T) {
		resp := Build(status.OK).KeepAlive().Finish()
		require.True(t, resp.KeepAlive())
		require.False(t, resp.Upgrade())
	})

	t.Run("upgrade", func(t *testing.T) {
		resp := Build(status.SwitchingProtocols).Upgrade("websocket").Finish()
		require.True(t, resp.Upgrade())
		require.True(t, resp.KeepAlive())
		require.Equal(t, "websocket", resp.Headers().Value("Upgrade"))
	})

	t.Run("version default decides keep-alive", func(t *testing.T) {
		require.True(t, Build(status.OK).Finish().KeepAlive())
		require.False(t, Build(status.OK).Version(proto.HTTP10).Finish().KeepAlive())
	})

	t.Run("no chunking", func(t *testing.T) {
		resp := Build(status.OK).NoChunking().Stream(StreamOf())
		require.True(t, resp.Head().NoChunking)
	})
}

func TestBuilderStickyError(t *testing.T) {
	t.Run("first fault wins, later mutations are no-ops", func(t *testing.T) {
		resp := Build(status.OK).
			Header("X-First", "fine").
			Header("Bad Key", "value").
			Header("X-Late", "too late").
			Cookie(cookie.New("late", "cookie")).
			ContentType(mime.HTML).
			Header("X-Also", "bad\x00value").
			Finish()

		require.Equal(t, status.InternalServerError, resp.Code())
		require.ErrorIs(t, resp.Err(), ErrBadHeaderKey)
		require.Equal(t, ErrBadHeaderKey.Error(), string(requirePayload(t, resp).Bytes()))

		// the partially built head is discarded entirely
		require.False(t, resp.Headers().Has("X-First"))
		require.False(t, resp.Headers().Has("X-Late"))
		require.Empty(t, resp.Headers().Values("Set-Cookie"))
	})

	t.Run("bad header value latches too", func(t *testing.T) {
		resp := Build(status.OK).Header("X-Test", "line\r\nbreak").Finish()
		require.ErrorIs(t, resp.Err(), ErrBadHeaderValue)
	})

	t.Run("latched fault overrides the intended body", func(t *testing.T) {
		resp := Build(status.OK).
			SetHeader("X-Test", "bad\x7fvalue").
			String("the intended payload")

		require.ErrorIs(t, resp.Err(), ErrBadHeaderValue)
		require.NotEqual(t, "the intended payload", string(requirePayload(t, resp).Bytes()))
	})
}

func TestBuilderCookies(t *testing.T) {
	t.Run("set and delete", func(t *testing.T) {
		resp := Build(status.OK).
			Cookie(
				cookie.Build("name", "value").
					Domain("www.rust-lang.org").
					Path("/test").
					HttpOnly(true).
					MaxAge(86400).
					Cookie(),
			).
			DelCookie(cookie.New("original", "")).
			Finish()

		require.Equal(t, status.OK, resp.Code())
		require.Equal(t, BodyEmpty, requirePayload(t, resp).Kind())
		require.Equal(t,
			[]string{
				"name=value; HttpOnly; Path=/test; Domain=www.rust-lang.org; Max-Age=86400",
				"original=; Max-Age=0",
			},
			resp.Headers().Values("Set-Cookie"),
		)
	})

	t.Run("emission follows staging order", func(t *testing.T) {
		resp := Build(status.OK).
			DelCookie(cookie.New("zebra", "")).
			Cookie(cookie.New("alpha", "1")).
			Finish()

		require.Equal(t,
			[]string{"zebra=; Max-Age=0", "alpha=1"},
			resp.Headers().Values("Set-Cookie"),
		)
	})

	t.Run("malformed cookie aborts the finalization", func(t *testing.T) {
		resp := Build(status.OK).
			Header("X-Test", "discarded with the rest").
			Cookie(cookie.New("bad name", "value")).
			String("the intended payload")

		require.Equal(t, status.InternalServerError, resp.Code())
		require.ErrorIs(t, resp.Err(), cookie.ErrBadName)
		require.False(t, resp.Headers().Has("X-Test"))
	})
}

func TestBuilderJSON(t *testing.T) {
	t.Run("sets content type when absent", func(t *testing.T) {
		resp := Build(status.OK).JSON([]string{"v1"})
		require.Equal(t, mime.JSON, resp.Headers().Value("Content-Type"))
		require.Equal(t, `["v1"]`, string(requirePayload(t, resp).Bytes()))
	})

	t.Run("preset content type survives", func(t *testing.T) {
		resp := Build(status.OK).
			Header("Content-Type", "text/json").
			JSON([]string{"v1"})

		require.Equal(t, []string{"text/json"}, resp.Headers().Values("Content-Type"))
		require.Equal(t, `["v1"]`, string(requirePayload(t, resp).Bytes()))
	})

	t.Run("serialization fault short-circuits", func(t *testing.T) {
		resp := Build(status.OK).
			Cookie(cookie.New("never", "emitted")).
			JSON(make(chan int))

		require.Equal(t, status.InternalServerError, resp.Code())
		require.Error(t, resp.Err())
		require.Empty(t, resp.Headers().Values("Set-Cookie"))
	})
}

func TestBuilderReuse(t *testing.T) {
	t.Run("second terminal call panics", func(t *testing.T) {
		b := Build(status.OK)
		b.Finish()
		require.Panics(t, func() { b.Finish() })
	})

	t.Run("terminal after an error terminal panics as well", func(t *testing.T) {
		b := Build(status.OK).Header("Bad Key", "value")
		b.Finish()
		require.Panics(t, func() { b.String("again") })
	})

	t.Run("mutators after consumption are silent no-ops", func(t *testing.T) {
		b := Build(status.OK)
		b.Finish()
		require.NotPanics(t, func() { b.Header("X-Test", "value").ForceClose() })
	})
}
