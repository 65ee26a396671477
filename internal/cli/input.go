package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/dotkit/pkg/document"
	"github.com/matzehuels/dotkit/pkg/dot"
	"github.com/matzehuels/dotkit/pkg/errors"
)

// isDOT reports whether path names DOT source rather than a graph document.
func isDOT(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		return true
	}
	return false
}

// loadGraph reads a graph document and builds it.
func loadGraph(path string) (dot.Graph, error) {
	doc, err := document.Load(path)
	if err != nil {
		return dot.Graph{}, err
	}
	return doc.Build()
}

// loadSource returns DOT text for path. DOT files are passed through as is,
// documents are built first.
func loadSource(path string) ([]byte, error) {
	if isDOT(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read %s", path)
		}
		return data, nil
	}
	g, err := loadGraph(path)
	if err != nil {
		return nil, err
	}
	return []byte(g.String()), nil
}
