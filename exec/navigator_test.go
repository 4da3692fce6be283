package exec_test

import (
	"context"
	osexec "os/exec"
	"runtime"
	"testing"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_Open(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX true/false")
	}

	t.Run("runs command with url", func(t *testing.T) {
		t.Parallel()

		var got string
		n := &exec.Navigator{Command: func(ctx context.Context, url string) *osexec.Cmd {
			got = url
			return osexec.CommandContext(ctx, "true")
		}}

		require.NoError(t, n.Open(context.Background(), "https://go.dev"))
		assert.Equal(t, "https://go.dev", got)
	})

	t.Run("reports opener failure", func(t *testing.T) {
		t.Parallel()

		n := &exec.Navigator{Command: func(ctx context.Context, _ string) *osexec.Cmd {
			return osexec.CommandContext(ctx, "false")
		}}

		err := n.Open(context.Background(), "https://go.dev")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "https://go.dev")
	})

	t.Run("rejects empty url", func(t *testing.T) {
		t.Parallel()

		err := exec.NewNavigator().Open(context.Background(), "")

		assert.Equal(t, startpage.EINVALID, startpage.ErrorCode(err))
	})
}

func TestOpenerCommand(t *testing.T) {
	t.Parallel()

	cmd := exec.OpenerCommand(context.Background(), "https://go.dev")

	assert.Equal(t, "https://go.dev", cmd.Args[len(cmd.Args)-1])
}
