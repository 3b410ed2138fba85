package objectstore

import (
	"errors"
	"net/url"
	"strings"
)

var ErrInvalidURL = errors.New("objectstore: invalid media url")

// BuildKey lays out an object key as category/slug/id.ext.
func BuildKey(category, slug, id, filename string) string {
	return category + "/" + slug + "/" + id + "." + Extension(filename)
}

// Extension is the last dot-separated part of filename, or "bin" when the
// name has no dot or ends with one. A dotless name such as "README" gets
// "bin", not the name itself.
func Extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return "bin"
	}
	return filename[i+1:]
}

// PublicURL joins the public media base and a key.
func PublicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}

// KeyFromURL recovers the object key from a public media URL: the path with
// leading slashes removed. The host is not checked.
func KeyFromURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}
	key := strings.TrimLeft(u.Path, "/")
	if key == "" {
		return "", ErrInvalidURL
	}
	return key, nil
}
