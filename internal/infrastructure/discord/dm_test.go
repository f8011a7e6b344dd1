package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkMessage(t *testing.T) {
	limit := maxMessageLength - chunkHeadroom

	t.Run("empty text yields no chunks", func(t *testing.T) {
		assert.Nil(t, chunkMessage(""))
	})

	t.Run("short text is a single chunk", func(t *testing.T) {
		chunks := chunkMessage("hello")
		require.Len(t, chunks, 1)
		assert.Equal(t, "hello", chunks[0])
	})

	t.Run("text at the limit stays whole", func(t *testing.T) {
		text := strings.Repeat("a", limit)
		chunks := chunkMessage(text)
		require.Len(t, chunks, 1)
	})

	t.Run("text over the limit is split", func(t *testing.T) {
		text := strings.Repeat("a", limit+1)
		chunks := chunkMessage(text)
		require.Len(t, chunks, 2)
		assert.Len(t, chunks[0], limit)
		assert.Len(t, chunks[1], 1)
	})

	t.Run("every chunk fits under the Discord cap", func(t *testing.T) {
		text := strings.Repeat("line of transcript text\n", 500)
		for _, chunk := range chunkMessage(text) {
			assert.LessOrEqual(t, len([]rune(chunk)), limit)
		}
	})

	t.Run("splits prefer newline boundaries", func(t *testing.T) {
		line := strings.Repeat("x", 100)
		text := strings.Repeat(line+"\n", 30)
		for _, chunk := range chunkMessage(text) {
			for _, l := range strings.Split(chunk, "\n") {
				if l != "" {
					assert.Len(t, l, 100)
				}
			}
		}
	})

	t.Run("no content is lost", func(t *testing.T) {
		line := strings.Repeat("y", 80)
		text := strings.TrimSuffix(strings.Repeat(line+"\n", 60), "\n")
		joined := strings.Join(chunkMessage(text), "\n")
		assert.Equal(t, text, joined)
	})

	t.Run("multibyte runes are not split", func(t *testing.T) {
		text := strings.Repeat("héllo wörld ", 400)
		for _, chunk := range chunkMessage(text) {
			assert.True(t, len([]rune(chunk)) <= limit)
			// A broken rune would produce an invalid UTF-8 string.
			assert.True(t, strings.ToValidUTF8(chunk, "") == chunk)
		}
	})
}
