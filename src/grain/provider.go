package grain

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// DatasetProvider supplies the distribution to plot. Implementations return a
// fresh copy on every call so a render never sees a dataset change underneath it.
type DatasetProvider interface {
	Dataset(ctx context.Context) (Dataset, error)
}

// Fixed serves a constant dataset.
type Fixed struct {
	Bins Dataset
}

// NewFixed returns a provider for bins, or for DefaultDataset when bins is nil.
func NewFixed(bins Dataset) *Fixed {
	if bins == nil {
		bins = DefaultDataset()
	}
	return &Fixed{Bins: bins.Clone()}
}

func (f *Fixed) Dataset(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.Bins.Clone(), nil
}

// FileProvider reads bins from a JSON-lines file, one {"diameter_mm":..,"count":..}
// object per line. Blank lines and full-line // comments are skipped.
type FileProvider struct {
	Path string
}

func (p *FileProvider) Dataset(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	ds, err := ReadJSONL(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", p.Path, err)
	}
	return ds, nil
}

// ReadJSONL parses a JSON-lines bin list and validates it.
func ReadJSONL(r io.Reader) (Dataset, error) {
	reader := bufio.NewReader(r)
	var ds Dataset
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lineNo++
			trimmed := strings.TrimSpace(line)
			if trimmed != "" && !strings.HasPrefix(trimmed, "//") {
				var b Bin
				if uerr := json.Unmarshal([]byte(trimmed), &b); uerr != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, uerr)
				}
				ds = append(ds, b)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// ProviderFor returns a FileProvider for path, or the default Fixed provider
// when path is empty.
func ProviderFor(path string) DatasetProvider {
	if strings.TrimSpace(path) == "" {
		return NewFixed(nil)
	}
	return &FileProvider{Path: path}
}
