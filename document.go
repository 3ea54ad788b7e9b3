package goreport

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DocumentExtension is appended to every generated file name.
const DocumentExtension = ".pdf"

// Document is a finalized report. It is immutable.
type Document struct {
	name      string
	pages     int
	data      []byte
	createdAt time.Time
}

// Name returns the computed file name, extension included.
func (d *Document) Name() string { return d.name }

// Pages returns the number of pages.
func (d *Document) Pages() int { return d.pages }

// CreatedAt returns the generation time printed in the footers.
func (d *Document) CreatedAt() time.Time { return d.createdAt }

// Bytes returns a copy of the encoded document.
func (d *Document) Bytes() []byte {
	return append([]byte(nil), d.data...)
}

// WriteTo writes the encoded document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(d.data).WriteTo(w)
}

// Save writes the document to a file, creating parent directories.
func (d *Document) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	_, writeErr := d.WriteTo(f)
	closeErr := f.Close()

	if writeErr != nil {
		// Attempt cleanup on write failure
		os.Remove(path)
		return fmt.Errorf("failed to write document: %w", writeErr)
	}
	return closeErr
}

// FileName picks the document name: the header text, else the table
// title, else "Report - <unix millis>". Path separators are replaced so
// the name stays a single path element.
func FileName(header *PageHeader, table *TableConfig, now time.Time) string {
	var base string
	switch {
	case header.hasText():
		base = header.Text.Text
	case table != nil && table.Title != "":
		base = table.Title
	default:
		base = "Report - " + strconv.FormatInt(now.UnixMilli(), 10)
	}
	base = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, base)
	return base + DocumentExtension
}

