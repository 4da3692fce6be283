package startpage_test

import (
	"testing"

	"github.com/fwojciec/startpage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeURIComponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"a b", "a%20b"},
		{"plain", "plain"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"a+b&c=d/e?f#g", "a%2Bb%26c%3Dd%2Fe%3Ff%23g"},
		{"zażółć", "za%C5%BC%C3%B3%C5%82%C4%87"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, startpage.EncodeURIComponent(tt.in), "input %q", tt.in)
	}
}

func TestDefaultEngines(t *testing.T) {
	t.Parallel()

	engines := startpage.DefaultEngines()
	require.Len(t, engines, 4)

	ids := make([]string, 0, len(engines))
	for _, e := range engines {
		ids = append(ids, e.ID)
		assert.NoError(t, e.Validate())
	}
	assert.Equal(t, []string{"virgil", "playseek", "google", "chatgpt"}, ids)
}

func TestEngine_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires id", func(t *testing.T) {
		t.Parallel()
		e := startpage.Engine{Template: "https://x/?q="}
		assert.Equal(t, startpage.EINVALID, startpage.ErrorCode(e.Validate()))
	})

	t.Run("requires template for generic engines", func(t *testing.T) {
		t.Parallel()
		e := startpage.Engine{ID: "ddg"}
		assert.Equal(t, startpage.EINVALID, startpage.ErrorCode(e.Validate()))
	})
}
