package dashboard

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSourceUsesClock(t *testing.T) {
	stamp := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
	source := NewStaticSource(DefaultDealerModel, func() time.Time { return stamp })
	model, err := source.Model(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stamp, model.LastUpdated)
	assert.Len(t, model.Sections, 5)

	_, err = (&StaticSource{}).Model(context.Background())
	assert.Error(t, err)
}

func TestFileSourceRereadsDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dealer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o600))
	source := NewFileSource(path)
	assert.Equal(t, path, source.Path())

	model, err := source.Model(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dealer Snapshot", model.Title)

	updated := strings.Replace(sampleDocument, "title: Dealer Snapshot", "title: Dealer Snapshot v2", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))
	model, err = source.Model(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dealer Snapshot v2", model.Title)
}

func TestFileSourceStampsModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dealer.yaml")
	payload := strings.Replace(sampleDocument, "  last_updated: 2025-06-05T09:00:00Z\n", "", 1)
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
	stamp := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	model, err := NewFileSource(path).Model(context.Background())
	require.NoError(t, err)
	assert.True(t, stamp.Equal(model.LastUpdated))
}

func TestFileSourceHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFileSource("unused.yaml").Model(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSourceRegistry(t *testing.T) {
	reg := NewSourceRegistry()
	_, ok := reg.Source(DefaultSourceName)
	assert.True(t, ok)

	_, ok = reg.Resolve("").(*StaticSource)
	assert.True(t, ok)

	file, ok := reg.Resolve("reports/north.yaml").(*FileSource)
	require.True(t, ok)
	assert.Equal(t, "reports/north.yaml", file.Path())

	require.NoError(t, reg.Register("north", NewFileSource("north.yaml")))
	_, ok = reg.Source("north")
	assert.True(t, ok)
	assert.Error(t, reg.Register("", NewDefaultSource()))
	assert.Error(t, reg.Register("nil", nil))
}
