package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goreport "github.com/VantageDataChat/GoReport"
)

func main() {
	dst := filepath.Join(os.TempDir(), "goreport_sample")
	if len(os.Args) > 1 {
		dst = os.Args[1]
	}

	payment := goreport.Record{
		"vendorNumber":  "123456",
		"vendorName":    "My vendor",
		"paymentNumber": "12468",
		"paymentDate":   "03/03/2023",
		"paymentAmount": "14693.61",
		"mailCode":      "W",
	}
	data := make([]goreport.Record, 100)
	for i := range data {
		data[i] = payment
	}

	keyMap := &goreport.KeyMap{
		Keys:    []string{"vendorNumber", "vendorName", "paymentNumber", "paymentDate", "paymentAmount", "mailCode"},
		Ordered: true,
	}
	header := &goreport.PageHeader{
		Blocks: []goreport.HeaderBlock{
			{Position: goreport.PositionLeft, Lines: []string{"Main 1", "Sub head 1", "Sub head 2"}},
			{Position: goreport.PositionRight, Lines: []string{"Payment Date 3/12/2023", "Batch B1234"}},
		},
		Text: &goreport.HeaderText{Position: goreport.PositionCenter, Text: "Account 1234 QA Payment"},
	}
	table := &goreport.TableConfig{
		Title:   "Account 1234 QA Payment",
		FindSum: true,
		SumKey:  "paymentAmount",
	}

	opts := goreport.DefaultOptions()
	opts.Exporter = goreport.DirExporter{Dir: dst}

	doc, err := goreport.MakeDocument(data, keyMap, header, nil, table, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %d pages to %s\n", doc.Pages(), filepath.Join(dst, doc.Name()))

	// Same report on a recorder, rasterized for a quick look.
	var rec *goreport.Recorder
	previewOpts := goreport.DefaultOptions()
	previewOpts.NewSurface = func(cfg goreport.PdfConfig) (goreport.Surface, error) {
		rec = goreport.NewRecorder(cfg)
		return rec, nil
	}
	if _, err := goreport.MakeDocument(data, keyMap, header, nil, table, previewOpts); err != nil {
		fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		os.Exit(1)
	}
	pattern := previewPattern(dst)
	if err := rec.SavePageImages(pattern, nil); err != nil {
		fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %d page previews to %s\n", rec.PageCount(), dst)
}

// previewPattern returns the SavePageImages pattern for dir. A "%" in dir
// is escaped so only the page number verb remains.
func previewPattern(dir string) string {
	return filepath.Join(strings.ReplaceAll(dir, "%", "%%"), "page_%d.png")
}
