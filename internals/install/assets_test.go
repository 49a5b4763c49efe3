package install

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	hashA = "aa11111111111111111111111111111111111111"
	hashB = "bb22222222222222222222222222222222222222"
	hashC = "cc33333333333333333333333333333333333333"
)

func assetsVersion(t *testing.T, h *fakeHost, layout string) string {
	return mustJSON(t, m{
		"id":         "1.5.2",
		"assets":     layout,
		"assetIndex": m{"id": layout, "url": h.URL("/indexes/index.json")},
	})
}

func serveAssetIndex(t *testing.T, h *fakeHost) {
	h.serveString("/indexes/index.json", mustJSON(t, m{
		"objects": m{
			"sounds/a.ogg":       m{"hash": hashA, "size": 1},
			"sounds/a-again.ogg": m{"hash": hashA, "size": 1},
			"lang/en_us.lang":    m{"hash": hashB, "size": 1},
		},
	}))
	h.serveString("/objects/aa/"+hashA, "a")
	h.serveString("/objects/bb/"+hashB, "b")
}

func TestSyncAssets(t *testing.T) {
	h := newFakeHost(t)
	serveAssetIndex(t, h)
	inst := newTestInstaller(t, h)
	version := parseVersion(t, assetsVersion(t, h, "1.19"))

	require.NoError(t, inst.SyncAssets(context.Background(), version))

	assert.FileExists(t, inst.AssetIndexPath(version))
	assert.FileExists(t, filepath.Join(inst.AssetObjectsDir(), "aa", hashA))
	assert.FileExists(t, filepath.Join(inst.AssetObjectsDir(), "bb", hashB))
	// same hash twice, downloaded once
	assert.Equal(t, 1, h.hitCount("/objects/aa/"+hashA))
	assert.NoDirExists(t, inst.LegacyAssetsDir())

	// nothing is downloaded again
	before := h.totalHits()
	require.NoError(t, inst.SyncAssets(context.Background(), version))
	assert.Equal(t, before, h.totalHits())
}

func TestSyncAssets_RetriesOnce(t *testing.T) {
	h := newFakeHost(t)
	serveAssetIndex(t, h)
	h.failFirst("/objects/aa/"+hashA, 1)
	h.failFirst("/objects/bb/"+hashB, 5)
	inst := newTestInstaller(t, h)
	version := parseVersion(t, assetsVersion(t, h, "1.19"))

	require.NoError(t, inst.SyncAssets(context.Background(), version))

	assert.FileExists(t, filepath.Join(inst.AssetObjectsDir(), "aa", hashA))
	assert.Equal(t, 2, h.hitCount("/objects/aa/"+hashA))
	// dropped after the single retry
	assert.NoFileExists(t, filepath.Join(inst.AssetObjectsDir(), "bb", hashB))
	assert.Equal(t, 2, h.hitCount("/objects/bb/"+hashB))
}

func TestSyncAssets_Legacy(t *testing.T) {
	for _, layout := range []string{"legacy", "pre-1.6"} {
		t.Run(layout, func(t *testing.T) {
			h := newFakeHost(t)
			serveAssetIndex(t, h)
			inst := newTestInstaller(t, h)
			version := parseVersion(t, assetsVersion(t, h, layout))

			// an existing destination is kept as is
			kept := filepath.Join(inst.LegacyAssetsDir(), "lang", "en_us.lang")
			writeFile(t, kept, "custom")

			require.NoError(t, inst.SyncAssets(context.Background(), version))

			content, err := os.ReadFile(filepath.Join(inst.LegacyAssetsDir(), "sounds", "a.ogg"))
			require.NoError(t, err)
			assert.Equal(t, "a", string(content))
			assert.FileExists(t, filepath.Join(inst.LegacyAssetsDir(), "sounds", "a-again.ogg"))

			content, err = os.ReadFile(kept)
			require.NoError(t, err)
			assert.Equal(t, "custom", string(content))

			// copied, not moved
			assert.FileExists(t, filepath.Join(inst.AssetObjectsDir(), "aa", hashA))
		})
	}
}

func TestSyncAssets_LegacySkipsMissingObjects(t *testing.T) {
	h := newFakeHost(t)
	serveAssetIndex(t, h)
	h.serveString("/indexes/index.json", mustJSON(t, m{
		"objects": m{
			"sounds/a.ogg":   m{"hash": hashA, "size": 1},
			"sounds/gone.ogg": m{"hash": hashC, "size": 1},
		},
	}))
	inst := newTestInstaller(t, h)
	version := parseVersion(t, assetsVersion(t, h, "legacy"))

	require.NoError(t, inst.SyncAssets(context.Background(), version))
	assert.FileExists(t, filepath.Join(inst.LegacyAssetsDir(), "sounds", "a.ogg"))
	assert.NoFileExists(t, filepath.Join(inst.LegacyAssetsDir(), "sounds", "gone.ogg"))
}

func TestSyncAssets_IndexErrors(t *testing.T) {
	t.Run("missing index", func(t *testing.T) {
		h := newFakeHost(t)
		inst := newTestInstaller(t, h)
		version := parseVersion(t, assetsVersion(t, h, "1.19"))

		err := inst.SyncAssets(context.Background(), version)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "asset index"))
	})

	t.Run("broken index", func(t *testing.T) {
		h := newFakeHost(t)
		h.serveString("/indexes/index.json", "{nope")
		inst := newTestInstaller(t, h)
		version := parseVersion(t, assetsVersion(t, h, "1.19"))

		assert.Error(t, inst.SyncAssets(context.Background(), version))
	})
}

func TestSyncAssets_LegacyStaysInsideRoot(t *testing.T) {
	h := newFakeHost(t)
	serveAssetIndex(t, h)
	h.serveString("/indexes/index.json", mustJSON(t, m{
		"objects": m{
			"sounds/a.ogg":         m{"hash": hashA, "size": 1},
			"../../escaped.txt":    m{"hash": hashA, "size": 1},
			"../../../outside.txt": m{"hash": hashA, "size": 1},
		},
	}))
	inst := newTestInstaller(t, h)
	version := parseVersion(t, assetsVersion(t, h, "legacy"))

	require.NoError(t, inst.SyncAssets(context.Background(), version))

	assert.FileExists(t, filepath.Join(inst.LegacyAssetsDir(), "sounds", "a.ogg"))
	assert.NoFileExists(t, filepath.Join(inst.Root, "escaped.txt"))
	assert.NoFileExists(t, filepath.Join(filepath.Dir(inst.Root), "outside.txt"))
}

func TestSyncAssets_SkipsInvalidHashes(t *testing.T) {
	h := newFakeHost(t)
	serveAssetIndex(t, h)
	h.serveString("/indexes/index.json", mustJSON(t, m{
		"objects": m{
			"sounds/a.ogg":   m{"hash": hashA, "size": 1},
			"sounds/bad.ogg": m{"hash": "../../../../bad", "size": 1},
		},
	}))
	inst := newTestInstaller(t, h)
	version := parseVersion(t, assetsVersion(t, h, "1.19"))

	require.NoError(t, inst.SyncAssets(context.Background(), version))

	assert.FileExists(t, filepath.Join(inst.AssetObjectsDir(), "aa", hashA))
	assert.Equal(t, 1, h.totalHits()-h.hitCount("/indexes/index.json"))
}

func TestSyncAssets_InvalidIndexID(t *testing.T) {
	h := newFakeHost(t)
	serveAssetIndex(t, h)
	inst := newTestInstaller(t, h)
	version := parseVersion(t, mustJSON(t, m{
		"id":         "1.19",
		"assetIndex": m{"id": "../../index", "url": h.URL("/indexes/index.json")},
	}))

	err := inst.SyncAssets(context.Background(), version)
	require.Error(t, err)
	assert.Equal(t, 0, h.totalHits())
}
