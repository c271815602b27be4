package accountsync

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"account-sync/feature/history"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sourceDoc = `context: shelbynet
default_account: alice
accounts:
  alice:
    address: "0xAA"
    private_key: ed25519-priv-0x01
  bob:
    address: "0xBB"
    private_key: ed25519-priv-0x02
networks:
  shelbynet:
    rpc_endpoint: https://api.shelbynet.shelby.xyz
`

// fixture lays out a source and a local document in a temp dir.
type fixture struct {
	dir    string
	source string
	local  string
}

func newFixture(t *testing.T, source string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:    dir,
		source: filepath.Join(dir, "config.yaml"),
		local:  filepath.Join(dir, "out", "pk.txt"),
	}
	if source != "" {
		require.NoError(t, os.WriteFile(f.source, []byte(source), 0o600))
	}
	return f
}

func (f fixture) service() *Service {
	return NewService(FileSource{Path: f.source}, f.local, zap.NewNop())
}

func (f fixture) writeLocal(t *testing.T, text string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(f.local), 0o700))
	require.NoError(t, os.WriteFile(f.local, []byte(text), 0o600))
}

func (f fixture) readLocal(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.local)
	require.NoError(t, err)
	return string(data)
}

// mockRecorder is a testify mock of Recorder.
type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, run *history.SyncRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}
