package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Source loads a full catalog snapshot.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// FileSource reads a JSON catalog fixture from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
	}
	return Decode(raw)
}

// Decode parses a JSON catalog document.
func Decode(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return c.normalize(), nil
}

// Static serves a fixed snapshot. Mostly for tests and the CLI.
type Static struct {
	Catalog *Catalog
}

func (s Static) Load(context.Context) (*Catalog, error) {
	return Normalize(s.Catalog), nil
}
