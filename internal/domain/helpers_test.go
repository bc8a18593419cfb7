package domain

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RickarySanchez/RusticFourier/internal/adapter"
	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

const testAnchorName = "RusticFourier"

// newAnchoredTree copies testdata into <tmp>/RusticFourier and changes the
// working directory to RusticFourier/datasets/wavegen/sinc, three levels
// below the anchor. It returns the anchor's absolute path.
func newAnchoredTree(t *testing.T) string {
	t.Helper()

	src, err := filepath.Abs("testdata")
	require.NoError(t, err)

	anchor := filepath.Join(t.TempDir(), testAnchorName)
	require.NoError(t, os.CopyFS(anchor, os.DirFS(src)))

	t.Chdir(filepath.Join(anchor, "datasets", "wavegen", "sinc"))

	return anchor
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func upFromSinc(elem ...string) m.Path {
	return m.Path(filepath.Join(append([]string{"..", "..", ".."}, elem...)...))
}

// recordingFS wraps the local adapter, recording reads and optionally
// failing selected operations.
type recordingFS struct {
	*adapter.LocalSourceFSAdapter

	wdErr   error
	statErr error
	listErr error

	mu    sync.Mutex
	reads []m.Path
}

func newRecordingFS() *recordingFS {
	return &recordingFS{LocalSourceFSAdapter: adapter.NewLocalSourceFSAdapter()}
}

func (f *recordingFS) Getwd() (m.Path, error) {
	if f.wdErr != nil {
		return "", f.wdErr
	}

	return f.LocalSourceFSAdapter.Getwd()
}

func (f *recordingFS) FileInfo(path m.Path) (os.FileInfo, error) {
	if f.statErr != nil {
		return nil, f.statErr
	}

	return f.LocalSourceFSAdapter.FileInfo(path)
}

// Walk reports listErr for root the way filepath.WalkDir reports a
// directory it can stat but not read: root is visited first, then the
// callback receives the ReadDir error for the same path.
func (f *recordingFS) Walk(root m.Path, fn adapter.WalkFunc) error {
	if f.listErr == nil {
		return f.LocalSourceFSAdapter.Walk(root, fn)
	}

	info, err := f.LocalSourceFSAdapter.FileInfo(root)
	if err != nil {
		return fn(string(root), nil, err)
	}

	entry := fs.FileInfoToDirEntry(info)
	if err := fn(string(root), entry, nil); err != nil {
		if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
			return nil
		}

		return err
	}

	return fn(string(root), entry, f.listErr)
}

func (f *recordingFS) ReadFile(path m.Path) ([]byte, error) {
	f.mu.Lock()
	f.reads = append(f.reads, path)
	f.mu.Unlock()

	return f.LocalSourceFSAdapter.ReadFile(path)
}
