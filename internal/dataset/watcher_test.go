package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	mu        sync.Mutex
	snapshots []*catalog.Catalog
}

func (p *recordingPublisher) Replace(c *catalog.Catalog) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshots = append(p.snapshots, c)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.snapshots)
}

func (p *recordingPublisher) last() *catalog.Catalog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshots[len(p.snapshots)-1]
}

func TestWatcher_Reload(t *testing.T) {
	paths := writeFiles(t, brandsDoc+productsDoc)
	pub := &recordingPublisher{}
	w := NewWatcher(NewProvider(NewLoader(time.Second), paths), pub, zap.NewNop(), 10*time.Millisecond)

	c, err := w.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, pub.count())
	assert.Same(t, c, pub.last())

	// a broken file must not replace the published snapshot
	require.NoError(t, os.WriteFile(paths[0], []byte("products: [{ id: p9, brandId: ghost }]\n"), 0644))
	_, err = w.Reload(context.Background())
	require.ErrorIs(t, err, ErrInvalidDataset)
	assert.Equal(t, 1, pub.count())

	stats := w.Stats()
	assert.Equal(t, 1, stats.Reloads)
	assert.Equal(t, 1, stats.Failures)
	assert.NotEmpty(t, stats.LastError)
}

func TestWatcher_ConcurrentReloadsPublishInOrder(t *testing.T) {
	paths := writeFiles(t, brandsDoc+productsDoc)
	pub := &recordingPublisher{}
	provider := NewProvider(NewLoader(time.Second), paths)

	// each build gets a strictly later timestamp than the one before it
	var tick atomic.Int64
	base := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return base.Add(time.Duration(tick.Add(1)) * time.Second) }

	w := NewWatcher(provider, pub, zap.NewNop(), 10*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.Reload(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.snapshots, 16)
	for i := 1; i < len(pub.snapshots); i++ {
		assert.True(t, pub.snapshots[i].LoadedAt.After(pub.snapshots[i-1].LoadedAt),
			"snapshot %d was built before the one published ahead of it", i)
	}
}

func TestWatcher_RunWithoutFilesReturnsImmediately(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewWatcher(NewProvider(NewLoader(time.Second), nil), &recordingPublisher{}, zap.NewNop(), time.Millisecond)

	assert.NoError(t, w.Run(context.Background()))
}

func TestWatcher_RunReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	paths := writeFiles(t, brandsDoc+productsDoc)
	pub := &recordingPublisher{}
	w := NewWatcher(NewProvider(NewLoader(time.Second), paths), pub, zap.NewNop(), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	renamed := brandsDoc + productsDoc + "  - { id: p2, name: SG Ball, slug: sg-ball, brandId: sg, categoryId: \"1\", mrp: 300, sku: SG-2, active: true }\n"

	// keep touching the file until the watcher has registered and reloaded
	require.Eventually(t, func() bool {
		_ = os.WriteFile(paths[0], []byte(renamed), 0644)
		return pub.count() > 0
	}, 5*time.Second, 50*time.Millisecond)

	assert.Len(t, pub.last().Products, 2)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_RunIgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	paths := writeFiles(t, brandsDoc+productsDoc)
	pub := &recordingPublisher{}
	w := NewWatcher(NewProvider(NewLoader(time.Second), paths), pub, zap.NewNop(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	neighbour := filepath.Join(filepath.Dir(paths[0]), "notes.txt")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(neighbour, []byte("scratch"), 0644))
		time.Sleep(20 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Zero(t, pub.count())
	assert.Zero(t, w.Stats().Events)
}
