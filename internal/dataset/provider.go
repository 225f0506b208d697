package dataset

import (
	"context"
	"time"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
)

// Provider produces catalog snapshots from a fixed list of sources.
// With no sources it serves the embedded seed catalog.
type Provider struct {
	loader  *Loader
	sources []string
	now     func() time.Time
}

// NewProvider creates a provider over sources
func NewProvider(loader *Loader, sources []string) *Provider {
	return &Provider{
		loader:  loader,
		sources: sources,
		now:     time.Now,
	}
}

// Load reads, merges and validates every source into a new snapshot
func (p *Provider) Load(ctx context.Context) (*catalog.Catalog, error) {
	var (
		doc *Document
		err error
	)
	if len(p.sources) == 0 {
		doc, err = Seed()
	} else {
		doc, err = p.loader.Load(ctx, p.sources)
	}
	if err != nil {
		return nil, err
	}
	return Build(doc, p.now())
}

// Sources returns the configured sources
func (p *Provider) Sources() []string {
	return p.sources
}

// Files returns the sources that live on the local filesystem
func (p *Provider) Files() []string {
	files := make([]string, 0, len(p.sources))
	for _, src := range p.sources {
		if !IsURL(src) {
			files = append(files, src)
		}
	}
	return files
}
