package dataset

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoSources = errors.New("no catalog sources provided")
)

var gzipMagic = []byte{0x1f, 0x8b}

// Loader reads catalog documents from files or URLs
type Loader struct {
	client *http.Client
}

// NewLoader creates a loader whose HTTP fetches time out after timeout
func NewLoader(timeout time.Duration) *Loader {
	return &Loader{
		client: &http.Client{Timeout: timeout},
	}
}

// Load reads a mix of files and http(s) URLs concurrently, merged in argument order
func (l *Loader) Load(ctx context.Context, sources []string) (*Document, error) {
	return l.loadAll(ctx, sources, l.loadSource)
}

// LoadFromFiles reads every path concurrently and merges them in argument order.
// Any failing file fails the whole load.
func (l *Loader) LoadFromFiles(ctx context.Context, paths []string) (*Document, error) {
	return l.loadAll(ctx, paths, l.loadFromFile)
}

// LoadFromURLs fetches every URL concurrently and merges them in argument order
func (l *Loader) LoadFromURLs(ctx context.Context, urls []string) (*Document, error) {
	return l.loadAll(ctx, urls, l.loadFromURL)
}

func (l *Loader) loadAll(ctx context.Context, sources []string, load func(context.Context, string) (*Document, error)) (*Document, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	// Results are slotted by index so the merge order matches the argument order
	docs := make([]*Document, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			doc, err := load(gctx, src)
			if err != nil {
				return fmt.Errorf("failed to load source %d (%s): %w", i+1, src, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Document{}
	for _, doc := range docs {
		merged.Merge(doc)
	}
	return merged, nil
}

func (l *Loader) loadSource(ctx context.Context, src string) (*Document, error) {
	if IsURL(src) {
		return l.loadFromURL(ctx, src)
	}
	return l.loadFromFile(ctx, src)
}

// IsURL reports whether a source should be fetched over HTTP
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func (l *Loader) loadFromFile(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return ParseDocument(f)
}

func (l *Loader) loadFromURL(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return ParseDocument(resp.Body)
}

// ParseDocument decodes a YAML catalog document, transparently gunzipping it
func ParseDocument(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(len(gzipMagic)); err == nil && bytes.Equal(magic, gzipMagic) {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		return decodeDocument(gz)
	}
	return decodeDocument(br)
}

func decodeDocument(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			// an empty file is an empty document
			return doc, nil
		}
		return nil, fmt.Errorf("failed to decode catalog document: %w", err)
	}
	return doc, nil
}
