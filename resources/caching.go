package resources

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/npillmayer/schuko/gconf"
)

var errNoAppKey = errors.New("application key is not set, caching disabled")

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`,
// plus an application specific key, taken as `app-key` from the global
// configuration. Clients may specify a sequence of folder names, which
// will be appended to the base cache path. Non-existing sub-folders will
// be created as necessary (with permissions 755).
//
// Caching is disabled while no app-key is configured.
func CacheDirPath(subfolders ...string) (string, error) {
	appkey := gconf.GetString("app-key")
	if appkey == "" {
		return "", errNoAppKey
	}
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	subs := path.Join(subfolders...)
	cachedir = path.Join(cachedir, appkey, subs)
	_, err = os.Stat(cachedir)
	if os.IsNotExist(err) {
		err = os.MkdirAll(cachedir, 0755)
		if err != nil {
			return "", err
		}
	}
	return cachedir, nil
}

// cacheFilePath maps a URL to its slot in the image cache.
func cacheFilePath(url string) (string, error) {
	dir, err := CacheDirPath("images")
	if err != nil {
		return "", err
	}
	return path.Join(dir, fmt.Sprintf("%x", sha256.Sum256([]byte(url)))), nil
}

// cachedImage returns the previously downloaded bytes for url, if any.
func cachedImage(url string) ([]byte, bool) {
	fpath, err := cacheFilePath(url)
	if err != nil {
		return nil, false
	}
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// storeCachedImage writes downloaded bytes into the cache. Failure to
// cache is not an error, just a missed optimization.
func storeCachedImage(url string, data []byte) {
	fpath, err := cacheFilePath(url)
	if err != nil {
		return
	}
	if err := os.WriteFile(fpath, data, 0644); err != nil {
		tracer().Infof("cannot cache image %s: %v", url, err)
	}
}
