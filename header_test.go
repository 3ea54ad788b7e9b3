package goreport

import (
	"errors"
	"testing"
)

func newPage() *Recorder {
	r := NewRecorder(PdfConfig{})
	r.AddPage()
	return r
}

func TestRenderHeader_Empty(t *testing.T) {
	for name, h := range map[string]*PageHeader{
		"nil":        nil,
		"zero":       {},
		"blank text": {Text: &HeaderText{Position: PositionCenter}},
		"no data":    {Image: &HeaderImage{Position: PositionLeft}},
	} {
		r := newPage()
		if !h.IsEmpty() {
			t.Errorf("%s: expected empty header", name)
		}
		if err := RenderHeader(r, h, nil); err != nil {
			t.Errorf("%s: RenderHeader: %v", name, err)
		}
		if n := len(r.Ops(1)); n != 0 {
			t.Errorf("%s: expected no ops, got %d", name, n)
		}
	}
}

func TestRenderHeader_TooManyBlocks(t *testing.T) {
	r := newPage()
	h := &PageHeader{Blocks: []HeaderBlock{
		{Position: PositionLeft, Lines: []string{"a"}},
		{Position: PositionRight, Lines: []string{"b"}},
		{Position: PositionCenter, Lines: []string{"c"}},
		{Position: PositionLeft, Lines: []string{"d"}},
	}}
	err := RenderHeader(r, h, nil)
	if !errors.Is(err, ErrTooManyHeaderObjects) {
		t.Fatalf("expected ErrTooManyHeaderObjects, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Kind != TooManyHeaderObjects {
		t.Errorf("expected *ConfigError of kind TooManyHeaderObjects, got %#v", err)
	}
}

func TestRenderHeader_BlockPositions(t *testing.T) {
	type slot struct {
		x, y  float64
		align Align
		style FontStyle
	}
	tests := []struct {
		pos  Position
		want []slot
	}{
		{PositionLeft, []slot{{10, 10, AlignLeft, StyleBold}, {10, 13, AlignLeft, StyleNormal}, {10, 16, AlignLeft, StyleNormal}}},
		{PositionRight, []slot{{170, 10, AlignLeft, StyleBold}, {170, 13, AlignLeft, StyleNormal}, {190, 16, AlignRight, StyleNormal}}},
		{PositionCenter, []slot{{105, 10, AlignLeft, StyleBold}, {105, 13, AlignLeft, StyleNormal}, {105, 16, AlignRight, StyleNormal}}},
		{"x", []slot{{10, 12, AlignLeft, StyleBold}, {10, 14, AlignLeft, StyleNormal}, {10, 16, AlignLeft, StyleNormal}}},
	}
	for _, tt := range tests {
		r := newPage()
		h := &PageHeader{Blocks: []HeaderBlock{{Position: tt.pos, Lines: []string{"one", "two", "three", "ignored"}}}}
		if err := RenderHeader(r, h, nil); err != nil {
			t.Fatalf("position %q: RenderHeader: %v", tt.pos, err)
		}
		ops := textOps(r, 1)
		if len(ops) != len(tt.want) {
			t.Fatalf("position %q: expected %d texts, got %d", tt.pos, len(tt.want), len(ops))
		}
		for i, w := range tt.want {
			op := ops[i]
			if op.X != w.x || op.Y != w.y || op.Align != w.align || op.Style != w.style || op.Size != 6 {
				t.Errorf("position %q line %d: got (%v,%v,%s,%q,%v), want (%v,%v,%s,%q,6)",
					tt.pos, i, op.X, op.Y, op.Align, op.Style, op.Size, w.x, w.y, w.align, w.style)
			}
		}
	}
}

func TestRenderHeader_SkipsEmptyLines(t *testing.T) {
	r := newPage()
	h := &PageHeader{Blocks: []HeaderBlock{{Position: PositionRight, Lines: []string{"Payment Date 3/12/2023", "Batch B1234"}}}}
	if err := RenderHeader(r, h, nil); err != nil {
		t.Fatalf("RenderHeader: %v", err)
	}
	if got := r.Texts(1); len(got) != 2 {
		t.Errorf("expected 2 texts, got %v", got)
	}
}

func TestRenderHeader_TextAlignment(t *testing.T) {
	tests := []struct {
		pos  Position
		want Align
	}{
		{PositionLeft, AlignRight},
		{PositionRight, AlignLeft},
		{PositionCenter, AlignCenter},
		{"", AlignCenter},
	}
	for _, tt := range tests {
		r := newPage()
		h := &PageHeader{Text: &HeaderText{Position: tt.pos, Text: "Account 1234"}}
		if err := RenderHeader(r, h, nil); err != nil {
			t.Fatalf("RenderHeader: %v", err)
		}
		ops := textOps(r, 1)
		if len(ops) != 1 {
			t.Fatalf("position %q: expected 1 text, got %d", tt.pos, len(ops))
		}
		if ops[0].Align != tt.want || ops[0].X != 105 || ops[0].Y != 10 || ops[0].Size != 10 {
			t.Errorf("position %q: got %+v, want align %s at (105,10) 10pt", tt.pos, ops[0], tt.want)
		}
	}
}

func TestRenderHeader_TextSize(t *testing.T) {
	r := newPage()
	h := &PageHeader{Text: &HeaderText{Position: PositionCenter, Text: "Big", Size: 14}}
	if err := RenderHeader(r, h, nil); err != nil {
		t.Fatalf("RenderHeader: %v", err)
	}
	if ops := textOps(r, 1); len(ops) != 1 || ops[0].Size != 14 {
		t.Errorf("expected one 14pt text, got %+v", ops)
	}
}

func TestRenderHeader_ImageSuppressesText(t *testing.T) {
	r := newPage()
	h := &PageHeader{
		Image: &HeaderImage{Position: PositionCenter, Data: testPNG(t, 4, 2)},
		Text:  &HeaderText{Position: PositionCenter, Text: "hidden"},
	}
	if err := RenderHeader(r, h, nil); err != nil {
		t.Fatalf("RenderHeader: %v", err)
	}
	var images, texts int
	for _, op := range r.Ops(1) {
		switch op.Kind {
		case OpImage:
			images++
		case OpText:
			texts++
		}
	}
	if images != 1 || texts != 0 {
		t.Errorf("expected 1 image and 0 texts, got %d images and %d texts", images, texts)
	}
}

func TestRenderHeader_ImageAndTextApart(t *testing.T) {
	r := newPage()
	h := &PageHeader{
		Image: &HeaderImage{Position: PositionLeft, Data: testPNG(t, 4, 2)},
		Text:  &HeaderText{Position: PositionCenter, Text: "shown"},
	}
	if err := RenderHeader(r, h, nil); err != nil {
		t.Fatalf("RenderHeader: %v", err)
	}
	if got := r.Texts(1); len(got) != 1 || got[0] != "shown" {
		t.Errorf("expected header text to render, got %v", got)
	}
}

func TestRenderHeader_ImagePlacement(t *testing.T) {
	tests := []struct {
		pos   Position
		wantX float64
	}{
		{PositionLeft, 10},
		{PositionRight, 170},
		{PositionCenter, 95},
		{"", 95},
	}
	for _, tt := range tests {
		r := newPage()
		h := &PageHeader{Image: &HeaderImage{Position: tt.pos, Data: testPNG(t, 20, 10)}}
		if err := RenderHeader(r, h, nil); err != nil {
			t.Fatalf("RenderHeader: %v", err)
		}
		ops := r.Ops(1)
		if len(ops) != 1 || ops[0].Kind != OpImage {
			t.Fatalf("position %q: expected a single image op, got %+v", tt.pos, ops)
		}
		op := ops[0]
		if op.X != tt.wantX || op.Y != 5 || op.W != 20 || op.H != 10 || op.Text != "PNG" {
			t.Errorf("position %q: got %+v, want x=%v y=5 20x10 PNG", tt.pos, op, tt.wantX)
		}
	}
}

func TestRenderHeader_BadImage(t *testing.T) {
	r := newPage()
	h := &PageHeader{Image: &HeaderImage{Position: PositionLeft, Data: []byte("not an image")}}
	if err := RenderHeader(r, h, nil); err == nil {
		t.Error("expected an error for undecodable image data")
	}
}

func TestHeaderRenderer_DecodesImageOnce(t *testing.T) {
	hr := newHeaderRenderer(&PageHeader{Image: &HeaderImage{Position: PositionLeft, Data: testPNG(t, 2, 2)}}, nil)
	r := NewRecorder(PdfConfig{})
	for i := 0; i < 3; i++ {
		r.AddPage()
		if err := hr.render(r); err != nil {
			t.Fatalf("render page %d: %v", i+1, err)
		}
	}
	first := hr.image
	if err := hr.render(r); err != nil {
		t.Fatalf("render: %v", err)
	}
	if hr.image != first {
		t.Error("image decoded again on a later page")
	}
	if r.Ops(1)[0].Name != r.Ops(3)[0].Name {
		t.Error("pages should reuse the same image resource name")
	}
}

func TestRenderTitle(t *testing.T) {
	r := newPage()
	RenderTitle(r, "Account 1234 QA Payment", nil)
	ops := r.Ops(1)
	if len(ops) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(ops))
	}
	if ops[0].Kind != OpLine || ops[0].Y != 24 || ops[0].X != 10 || ops[0].X2 != 190 {
		t.Errorf("unexpected first rule: %+v", ops[0])
	}
	if ops[1].Kind != OpLine || ops[1].Y != 28 {
		t.Errorf("unexpected second rule: %+v", ops[1])
	}
	if ops[2].Text != "Account 1234 QA Payment" || ops[2].X != 10 || ops[2].Y != 27 || ops[2].Style != StyleBold || ops[2].Size != 7 {
		t.Errorf("unexpected title: %+v", ops[2])
	}
}

func TestRenderTitle_Empty(t *testing.T) {
	r := newPage()
	RenderTitle(r, "", nil)
	if got := r.Texts(1); len(got) != 1 || got[0] != "" {
		t.Errorf("expected an empty title to be drawn, got %v", got)
	}
}
