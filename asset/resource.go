package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Resource wraps a local file or a remote document fetched over http(s).
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Get the path or URL of this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Check whether the resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Open a resource. If relTo is specified and pathToResource does not define a
// scheme, the resource is looked up next to relTo; a config file served over
// http can therefore reference sibling documents with a relative path.
//
// The caller must close the returned resource.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	loc, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, fmt.Errorf("resource: invalid location %q: %w", pathToResource, err)
	}

	if loc.Scheme == "" && relTo != nil && !filepath.IsAbs(loc.Path) {
		rel := loc.Path
		loc, _ = url.Parse(relTo.url.String())
		if loc.Scheme == "" {
			base, err := filepath.Abs(relTo.url.String())
			if err != nil {
				return nil, fmt.Errorf("resource: could not detect abs path for %s: %w", relTo.url, err)
			}
			loc.Path = filepath.Join(filepath.Dir(base), rel)
		} else {
			loc.Path = path.Join(path.Dir(loc.Path), rel)
		}
	}

	var reader io.ReadCloser
	switch loc.Scheme {
	case "":
		f, err := os.Open(filepath.Clean(loc.Path))
		if err != nil {
			return nil, fmt.Errorf("resource: %w", err)
		}
		reader = f
	case "http", "https":
		resp, err := httpClient.Get(loc.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %w", loc, err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", loc, resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", loc.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        loc,
	}, nil
}

// Create a resource from a reader.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	loc, err := url.Parse(name)
	if err != nil {
		loc = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        loc,
	}
}
