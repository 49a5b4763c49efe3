package downloadmgr

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_EachRespectsLimit(t *testing.T) {
	tests := []struct {
		name        string
		concurrency int
		want        int32
	}{
		{"explicit limit", 3, 3},
		{"default limit", 0, DefaultConcurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var running, peak, calls int32
			m := New(tt.concurrency)
			m.Each(context.Background(), 40, func(ctx context.Context, i int) {
				n := atomic.AddInt32(&running, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				atomic.AddInt32(&calls, 1)
			})

			assert.Equal(t, int32(40), calls)
			assert.LessOrEqual(t, peak, tt.want)
		})
	}
}

func TestManager_FetchAllKeepsOrder(t *testing.T) {
	files := map[string]string{}
	assets := []Asset{}
	dir := t.TempDir()
	for i := 0; i < 10; i++ {
		files[fmt.Sprintf("/%d", i)] = fmt.Sprintf("file %d", i)
	}
	srv := fileServer(t, files)
	for i := 0; i < 10; i++ {
		assets = append(assets, Asset{URL: fmt.Sprintf("%s/%d", srv.URL, i), Directory: dir, Name: fmt.Sprint(i)})
	}
	// one that fails
	assets = append(assets, Asset{URL: srv.URL + "/nope", Directory: dir, Name: "nope"})

	results := New(4).FetchAll(context.Background(), NewFetcher(srv.Client(), nil), assets)

	assert.Len(t, results, len(assets))
	for i, r := range results {
		assert.Equal(t, assets[i], r.Asset)
	}
	assert.Equal(t, []Asset{assets[10]}, Failed(results))
}
