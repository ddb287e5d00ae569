package resources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/npillmayer/markdoc/core"
)

// DefaultTimeout bounds a single remote image fetch.
const DefaultTimeout = 10 * time.Second

var httpClient = &http.Client{Timeout: DefaultTimeout}

// SetFetchTimeout changes the time bound for remote fetches. It applies
// to fetches started afterwards.
func SetFetchTimeout(d time.Duration) {
	httpClient = &http.Client{Timeout: d}
}

// NotFound returns an application error for a missing image resource.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "image not found: %s", res)
}

type bytesPlusErr struct {
	data []byte
	err  error
}

// ImagePromise is an async/await handle for a loading image.
type ImagePromise interface {
	Bytes() ([]byte, error)
}

type imageLoader struct {
	await func(ctx context.Context) ([]byte, error)
}

func (loader imageLoader) Bytes() ([]byte, error) {
	return loader.await(context.Background())
}

// ResolveImage loads the image a document refers to. target is either
// an HTTP(S) URL or a file path; relative paths are resolved against
// docdir, the directory of the source document. Loading starts
// immediately; the returned promise delivers the image bytes or a coded
// failure (not found, non-200 status, I/O error).
func ResolveImage(docdir string, target string) ImagePromise {
	ch := make(chan bytesPlusErr)
	go func(ch chan<- bytesPlusErr) {
		result := bytesPlusErr{}
		if isRemote(target) {
			result.data, result.err = fetchRemoteImage(target)
		} else {
			path := target
			if !filepath.IsAbs(path) {
				path = filepath.Join(docdir, path)
			}
			result.data, result.err = readLocalImage(path)
		}
		ch <- result
		close(ch)
	}(ch)
	return imageLoader{
		await: func(ctx context.Context) ([]byte, error) {
			select {
			case <-ctx.Done():
				return nil, core.ErrorWithCode(ctx.Err(), core.ECONNECTION)
			case r := <-ch:
				return r.data, r.err
			}
		},
	}
}

func isRemote(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

func readLocalImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, NotFound(path)
	} else if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot read image %s", path)
	}
	tracer().Debugf("read local image %s, %d bytes", path, len(data))
	return data, nil
}

func fetchRemoteImage(url string) ([]byte, error) {
	if data, ok := cachedImage(url); ok {
		tracer().Debugf("image %s found in cache", url)
		return data, nil
	}
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, core.WrapError(err, core.ECONNECTION, "cannot fetch image %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, core.Error(core.ECONNECTION, "fetching image %s: status %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.ErrorWithCode(err, core.ECONNECTION)
	}
	tracer().Debugf("fetched image %s, %d bytes", url, len(data))
	storeCachedImage(url, data)
	return data, nil
}
