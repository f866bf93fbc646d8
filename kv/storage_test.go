package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	getHeaders := func() *Storage {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("hello", "Pavlo")
	}

	t.Run("get", func(t *testing.T) {
		kv := getHeaders()
		require.Equal(t, "World", kv.Value("HELLO"))
		require.Equal(t, []string{"World", "Pavlo"}, kv.Values("hello"))
		require.Equal(t, "fallback", kv.ValueOr("nonexistent", "fallback"))
		require.True(t, kv.Has("lorem"))
		require.False(t, kv.Has("ipsum"))
	})

	t.Run("delete", func(t *testing.T) {
		kv := getHeaders().Delete("HELLO")

		want := []Pair{
			{"Foo", "bar"},
			{"Lorem", "ipsum"},
		}
		require.Equal(t, want, kv.Expose())
	})

	t.Run("set", func(t *testing.T) {
		kv := getHeaders().Set("HELLO", "no more Pavlo")

		want := []Pair{
			{"Foo", "bar"},
			{"Lorem", "ipsum"},
			{"HELLO", "no more Pavlo"},
		}
		require.Equal(t, want, kv.Expose())
	})

	t.Run("set new key", func(t *testing.T) {
		kv := New().
			Add("Pavlo", "the best").
			Set("Glory to", "Ukraine")

		want := []Pair{
			{"Pavlo", "the best"},
			{"Glory to", "Ukraine"},
		}
		require.Equal(t, want, kv.Expose())
	})

	t.Run("keys", func(t *testing.T) {
		kv := getHeaders()
		require.Equal(t, []string{"Foo", "Hello", "Lorem"}, kv.Keys())
	})

	t.Run("iter", func(t *testing.T) {
		var keys []string
		for key := range getHeaders().Iter() {
			keys = append(keys, key)
		}

		require.Equal(t, []string{"Foo", "Hello", "Lorem", "hello"}, keys)
	})

	t.Run("empty", func(t *testing.T) {
		kv := getHeaders()
		for _, key := range append([]string(nil), kv.Keys()...) {
			kv.Delete(key)
		}

		require.True(t, kv.Empty())
	})

	t.Run("from map", func(t *testing.T) {
		kv := NewFromMap(map[string][]string{"Hello": {"World", "Pavlo"}})
		require.Equal(t, []string{"World", "Pavlo"}, kv.Values("hello"))
	})
}
