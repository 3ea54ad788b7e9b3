package goreport

import (
	"fmt"
	"io"
	"path/filepath"
)

// Exporter hands a finalized document to its destination.
type Exporter interface {
	Export(doc *Document) error
}

// ExporterFunc adapts a function to the Exporter interface.
type ExporterFunc func(doc *Document) error

// Export calls f(doc).
func (f ExporterFunc) Export(doc *Document) error { return f(doc) }

// DirExporter saves documents under Dir using their computed names.
type DirExporter struct {
	Dir string
}

// Export writes doc to Dir/doc.Name().
func (e DirExporter) Export(doc *Document) error {
	return doc.Save(filepath.Join(e.Dir, doc.Name()))
}

// WriterExporter streams document bytes to W.
type WriterExporter struct {
	W io.Writer
}

// Export copies doc to W.
func (e WriterExporter) Export(doc *Document) error {
	if e.W == nil {
		return fmt.Errorf("export %s: nil writer", doc.Name())
	}
	if _, err := doc.WriteTo(e.W); err != nil {
		return fmt.Errorf("export %s: %w", doc.Name(), err)
	}
	return nil
}
