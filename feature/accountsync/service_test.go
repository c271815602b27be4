package accountsync

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"account-sync/core/document"
	"account-sync/core/storage/mocks"
	"account-sync/feature/history"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Sync_CreatesLocalDocument(t *testing.T) {
	f := newFixture(t, sourceDoc)

	res, err := f.service().Sync(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Report.Added)
	assert.Zero(t, res.Report.Filled)
	assert.Zero(t, res.Report.Mismatches)
	assert.True(t, res.Written)
	assert.True(t, res.Changed)
	assert.Equal(t, 2, res.Accounts)

	want := document.Header + "\n" +
		"accounts:\n" +
		"  alice:\n" +
		"    address: \"0xAA\"\n" +
		"    private_key: ed25519-priv-0x01\n" +
		"  bob:\n" +
		"    address: \"0xBB\"\n" +
		"    private_key: ed25519-priv-0x02\n"
	assert.Equal(t, want, f.readLocal(t))

	info, err := os.Stat(f.local)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestService_Sync_SecondRunIsNoop(t *testing.T) {
	f := newFixture(t, sourceDoc)
	svc := f.service()

	_, err := svc.Sync(context.Background(), Options{})
	require.NoError(t, err)
	first := f.readLocal(t)

	res, err := svc.Sync(context.Background(), Options{})
	require.NoError(t, err)

	assert.False(t, res.Report.HasChanges())
	assert.False(t, res.Changed)
	assert.Equal(t, first, f.readLocal(t))
}

func TestService_Sync_FillsAndKeepsLocalValues(t *testing.T) {
	f := newFixture(t, sourceDoc)
	f.writeLocal(t, "accounts:\n"+
		"  alice:\n"+
		"    private_key: ed25519-priv-0x01\n"+
		"  bob:\n"+
		"    address: \"0xB2\"\n"+
		"  carol:\n"+
		"    address: \"0xCC\"\n")

	res, err := f.service().Sync(context.Background(), Options{})
	require.NoError(t, err)

	assert.Zero(t, res.Report.Added)
	assert.Equal(t, 2, res.Report.Filled) // alice address, bob key
	assert.Equal(t, 1, res.Report.Mismatches)

	local := document.Parse(f.readLocal(t))
	assert.Equal(t, document.AccountSet{
		"alice": {Address: "0xAA", PrivateKey: "ed25519-priv-0x01"},
		"bob":   {Address: "0xB2", PrivateKey: "ed25519-priv-0x02"},
		"carol": {Address: "0xCC"},
	}, local)
}

func TestService_Sync_DryRunDoesNotWrite(t *testing.T) {
	f := newFixture(t, sourceDoc)

	res, err := f.service().Sync(context.Background(), Options{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Report.Added)
	assert.False(t, res.Written)
	assert.NotEmpty(t, res.Output)
	_, err = os.Stat(f.local)
	assert.True(t, os.IsNotExist(err))
}

func TestService_Sync_SourceErrors(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		f := newFixture(t, "")
		f.writeLocal(t, "accounts:\n  keep:\n    address: \"0x1\"\n")

		_, err := f.service().Sync(context.Background(), Options{})
		assert.ErrorIs(t, err, ErrSourceNotFound)
		assert.Contains(t, f.readLocal(t), "keep")
	})

	t.Run("NoAccounts", func(t *testing.T) {
		f := newFixture(t, "context: shelbynet\naccounts:\n  broken:\n     address: x\n")

		_, err := f.service().Sync(context.Background(), Options{})
		assert.ErrorIs(t, err, ErrNoAccounts)
		assert.NotErrorIs(t, err, ErrSourceNotFound)
		_, statErr := os.Stat(f.local)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestService_Sync_InvalidUTF8Local(t *testing.T) {
	f := newFixture(t, sourceDoc)
	f.writeLocal(t, "# caf\xe9\naccounts:\n  old:\n    address: \"0x01\"\n")

	res, err := f.service().Sync(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Report.Added)
	assert.Contains(t, f.readLocal(t), "  old:\n")
}

func TestService_Sync_Archive(t *testing.T) {
	t.Run("ArchivesPreviousDocument", func(t *testing.T) {
		f := newFixture(t, sourceDoc)
		previous := "accounts:\n  old:\n    address: \"0x01\"\n"
		f.writeLocal(t, previous)

		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "bkt", mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "snapshots/pk.txt/")
		}), mock.Anything, int64(len(previous)), mock.Anything).Return(minio.UploadInfo{}, nil).Once()

		svc := f.service()
		svc.SetArchiver(NewArchiver(client, "bkt", "snapshots", 0))

		res, err := svc.Sync(context.Background(), Options{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.Snapshot, "snapshots/pk.txt/"))
		client.AssertExpectations(t)
	})

	t.Run("SkipsWhenLocalMissing", func(t *testing.T) {
		f := newFixture(t, sourceDoc)
		client := new(mocks.Client)

		svc := f.service()
		svc.SetArchiver(NewArchiver(client, "bkt", "snapshots", 0))

		res, err := svc.Sync(context.Background(), Options{})
		require.NoError(t, err)
		assert.Empty(t, res.Snapshot)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("PruneFailureStillWrites", func(t *testing.T) {
		f := newFixture(t, sourceDoc)
		f.writeLocal(t, "accounts:\n  old:\n    address: \"0x01\"\n")

		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "bkt", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil).Once()
		failing := make(chan minio.ObjectInfo, 1)
		failing <- minio.ObjectInfo{Err: errors.New("list denied")}
		close(failing)
		client.On("ListObjects", mock.Anything, "bkt", mock.Anything).
			Return((<-chan minio.ObjectInfo)(failing)).Once()

		svc := f.service()
		svc.SetArchiver(NewArchiver(client, "bkt", "snapshots", 3))

		res, err := svc.Sync(context.Background(), Options{})
		require.NoError(t, err)
		assert.True(t, res.Written)
		assert.True(t, strings.HasPrefix(res.Snapshot, "snapshots/pk.txt/"))
		assert.Contains(t, f.readLocal(t), "  alice:\n")
	})

	t.Run("FailureBlocksWrite", func(t *testing.T) {
		f := newFixture(t, sourceDoc)
		previous := "accounts:\n  old:\n    address: \"0x01\"\n"
		f.writeLocal(t, previous)

		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("unreachable"))

		svc := f.service()
		svc.SetArchiver(NewArchiver(client, "bkt", "snapshots", 0))

		_, err := svc.Sync(context.Background(), Options{})
		assert.ErrorContains(t, err, "unreachable")
		assert.Equal(t, previous, f.readLocal(t))
	})
}

func TestService_Sync_RecordsHistory(t *testing.T) {
	f := newFixture(t, sourceDoc)

	rec := new(mockRecorder)
	rec.On("Record", mock.Anything, mock.MatchedBy(func(run *history.SyncRun) bool {
		return run.Added == 2 && run.Written && !run.DryRun && run.LocalPath == f.local
	})).Return(nil).Once()

	svc := f.service()
	svc.SetRecorder(rec)

	_, err := svc.Sync(context.Background(), Options{})
	require.NoError(t, err)
	rec.AssertExpectations(t)
}

func TestService_Sync_HistoryFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, sourceDoc)

	rec := new(mockRecorder)
	rec.On("Record", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := f.service()
	svc.SetRecorder(rec)

	res, err := svc.Sync(context.Background(), Options{})
	require.NoError(t, err)
	assert.True(t, res.Written)
}

func TestService_Sync_Concurrent(t *testing.T) {
	f := newFixture(t, sourceDoc)
	svc := f.service()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Sync(context.Background(), Options{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, document.Parse(f.readLocal(t)), 2)
}

func TestService_Accounts(t *testing.T) {
	f := newFixture(t, sourceDoc)
	svc := f.service()

	set, err := svc.Accounts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, set.Len())

	_, err = svc.Sync(context.Background(), Options{})
	require.NoError(t, err)

	set, err = svc.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, set.Aliases())
}

// ctxSource fails once its context is cancelled.
type ctxSource struct {
	FileSource
}

func (s ctxSource) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.FileSource.Read(ctx)
}

func TestService_Sync_IgnoresCallerCancellation(t *testing.T) {
	f := newFixture(t, sourceDoc)
	svc := NewService(ctxSource{FileSource{Path: f.source}}, f.local, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.Sync(ctx, Options{})
	require.NoError(t, err)
	assert.True(t, res.Written)
}
