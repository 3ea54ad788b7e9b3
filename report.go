// Package goreport renders tabular records into a paginated PDF report
// with a repeating page header, a titled table, per-page footers and an
// optional total block.
//
// The drawing target is abstracted by Surface; NewFPDFSurface produces
// real PDF output and NewRecorder captures the layout in memory.
//
// See the Version variable for the current library version.
package goreport

import (
	"bytes"
	"fmt"
	"time"
)

// metadataSetter is implemented by surfaces that carry document metadata.
type metadataSetter interface {
	SetMetadata(title string, created time.Time)
}

// MakeDocument lays out data as a report and returns the finalized
// document. When opts.Exporter is set the document is also exported.
//
// Validation failures return a *ConfigError. Checks that happen while
// drawing (the header block count, the sum key) fail after earlier pages
// were already drawn; the partial document is discarded.
func MakeDocument(data []Record, keyMap *KeyMap, header *PageHeader, pdfConfig *PdfConfig, tableConfig *TableConfig, opts *Options) (*Document, error) {
	if data == nil || keyMap == nil {
		return nil, ErrMissingData
	}
	cfg := pdfConfig.normalized()
	opts = opts.normalized()
	layout := opts.Layout
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if tableConfig == nil {
		tableConfig = &TableConfig{}
	}
	log := opts.Logger

	s, err := opts.NewSurface(cfg)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	// One timestamp per document, shared by every footer.
	now := opts.Now()
	stamp := FormatTimestamp(now)

	s.AddPage()

	// Title.
	RenderTitle(s, tableConfig.Title, layout)

	// Body.
	order, err := ColumnOrder(keyMap)
	if err != nil {
		return nil, err
	}
	headers, err := ColumnHeaders(keyMap)
	if err != nil {
		return nil, err
	}
	rows := FormatRows(data, order)

	hr := newHeaderRenderer(header, layout)
	if err := hr.render(s); err != nil {
		return nil, err
	}
	onPageBreak := func(page int) error {
		log.V(2).Info("page break", "page", page)
		return hr.render(s)
	}

	res, err := PaginateTable(s, &Table{
		Headers: headers,
		Rows:    rowTexts(rows),
		StartY:  layout.TableStartY,
		Layout:  layout,
	}, onPageBreak)
	if err != nil {
		return nil, err
	}
	log.V(1).Info("table paginated", "rows", res.Rows, "pages", res.Pages, "rowsOnLastPage", res.RowsOnLastPage)

	// Room for the total block, before footers so page counts are final.
	var summaryTop float64
	if tableConfig.FindSum {
		if tableConfig.SumKey == "" {
			return nil, ErrMissingSumKey
		}
		switch layout.SummaryAnchor {
		case AnchorRowFormula:
			summaryTop = SummaryOffset(len(data), layout)
		default:
			top, err := res.Reserve(s, layout.SummaryGap+layout.SummaryHeight, layout, onPageBreak)
			if err != nil {
				return nil, err
			}
			summaryTop = top + layout.SummaryGap
		}
	}

	// Footers.
	RenderFooters(s, stamp, layout)

	// Total.
	if tableConfig.FindSum {
		s.SetPage(s.PageCount())
		if err := RenderSummary(s, data, tableConfig.Title, tableConfig.SumKey, summaryTop, layout); err != nil {
			return nil, err
		}
		log.V(1).Info("summary drawn", "sumKey", tableConfig.SumKey, "offset", summaryTop)
	}

	// Finalize.
	name := FileName(header, tableConfig, now)
	if m, ok := s.(metadataSetter); ok {
		m.SetMetadata(name, now)
	}
	pages := s.PageCount()
	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		return nil, err
	}
	doc := &Document{
		name:      name,
		pages:     pages,
		data:      buf.Bytes(),
		createdAt: now,
	}

	if opts.Exporter != nil {
		if err := opts.Exporter.Export(doc); err != nil {
			return nil, fmt.Errorf("export %s: %w", name, err)
		}
		log.V(1).Info("document exported", "name", name, "pages", pages, "bytes", len(doc.data))
	}
	return doc, nil
}
