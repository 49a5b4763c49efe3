package downloadmgr

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/minepkg/launchkit/internals/events"
	"github.com/pkg/errors"
)

// Asset is a URL, target pair that will be downloaded using http(s)
type Asset struct {
	URL       string
	Directory string
	Name      string
}

// Path returns the target file path
func (a Asset) Path() string {
	return filepath.Join(a.Directory, a.Name)
}

// Result is the outcome of one download. A failed download is a value, not
// an error return, so a batch can continue past it.
type Result struct {
	Asset Asset
	// Err is set if the download failed. No (partial) file exists in that case
	Err error
}

// Failed returns true if the download did not complete
func (r Result) Failed() bool {
	return r.Err != nil
}

// Path returns the target file path of the download
func (r Result) Path() string {
	return r.Asset.Path()
}

// DefaultIdleTimeout is used if Fetcher.IdleTimeout is not set
const DefaultIdleTimeout = 10 * time.Second

// Fetcher downloads single files
type Fetcher struct {
	// Client is used for all requests, http.DefaultClient if nil
	Client *http.Client
	Events events.Sink
	// IdleTimeout aborts a download if no data arrives for this long.
	// Slow but steady downloads never hit it. Defaults to DefaultIdleTimeout
	IdleTimeout time.Duration
}

// NewFetcher returns a Fetcher using client (http.DefaultClient if nil)
func NewFetcher(client *http.Client, sink events.Sink) *Fetcher {
	return &Fetcher{Client: client, Events: events.OrNop(sink)}
}

// Fetch downloads url to dir/name. dir (and its parents) are created if needed
func (f *Fetcher) Fetch(ctx context.Context, url string, dir string, name string) Result {
	return f.FetchAsset(ctx, Asset{URL: url, Directory: dir, Name: name})
}

// FetchAsset downloads the given asset. The body is streamed to disk.
// Every failure (connection, timeout, status code, disk) ends up in Result.Err
// and any partially written file is removed before returning.
func (f *Fetcher) FetchAsset(ctx context.Context, a Asset) Result {
	if err := f.fetch(ctx, a); err != nil {
		f.sink().Debug("failed to download " + a.URL + " to " + a.Path() + ": " + err.Error())
		return Result{Asset: a, Err: err}
	}
	f.sink().Downloaded(a.Name)
	return Result{Asset: a}
}

func (f *Fetcher) fetch(ctx context.Context, a Asset) error {
	if err := os.MkdirAll(a.Directory, os.ModePerm); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// the timer is reset by every read, so it only fires on a stalled connection
	var stalled int32
	timeout := f.idleTimeout()
	idle := time.AfterFunc(timeout, func() {
		atomic.StoreInt32(&stalled, 1)
		cancel()
	})
	defer idle.Stop()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL, nil)
	if err != nil {
		return err
	}

	res, err := f.client().Do(req)
	if err != nil {
		if atomic.LoadInt32(&stalled) == 1 {
			return errors.Errorf("no response from %s for %s", a.URL, timeout)
		}
		return errors.Wrapf(err, "error while fetching %s", a.URL)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errors.Errorf("invalid status code: %s from %s", res.Status, a.URL)
	}

	target := a.Path()
	dest, err := os.Create(target)
	if err != nil {
		return err
	}

	body := &idleReader{r: res.Body, timer: idle, timeout: timeout}
	_, err = io.Copy(newProgressWriter(dest, a.Name, f.sink()), body)
	if err != nil && atomic.LoadInt32(&stalled) == 1 {
		err = errors.Errorf("no data received for %s", timeout)
	}
	if err == nil {
		err = dest.Sync()
	}
	if closeErr := dest.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// a retry has to start with a clean slate
		os.Remove(target)
		return errors.Wrapf(err, "could not write %s", target)
	}
	return nil
}

func (f *Fetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

func (f *Fetcher) idleTimeout() time.Duration {
	if f.IdleTimeout <= 0 {
		return DefaultIdleTimeout
	}
	return f.IdleTimeout
}

// idleReader resets timer after every read that returned data
type idleReader struct {
	r       io.Reader
	timer   *time.Timer
	timeout time.Duration
}

func (i *idleReader) Read(b []byte) (int, error) {
	n, err := i.r.Read(b)
	if n > 0 {
		i.timer.Reset(i.timeout)
	}
	return n, err
}

func (f *Fetcher) sink() events.Sink {
	return events.OrNop(f.Events)
}
