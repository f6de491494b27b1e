package storage

import "io"

// BlobStore holds uploaded speaking answers. Keys are opaque relative paths
// ("audio/<uuid>.webm"); the transcriber reads them back by the same key.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
}
