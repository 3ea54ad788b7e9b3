package goreport

// maxHeaderBlocks and maxHeaderLines bound the header block grid.
const (
	maxHeaderBlocks = 3
	maxHeaderLines  = 3
)

// PageHeader describes the content repeated at the top of every page.
type PageHeader struct {
	Image  *HeaderImage
	Text   *HeaderText
	Blocks []HeaderBlock
}

// HeaderImage is an encoded image (PNG, JPEG, GIF, BMP, TIFF or WebP).
type HeaderImage struct {
	Position Position
	Data     []byte
}

// HeaderText is a single line of large header text.
type HeaderText struct {
	Position Position
	Text     string
	// Size is the font size in points; 0 uses the layout default.
	Size float64
}

// HeaderBlock is a stack of up to three small lines; the first is bold.
type HeaderBlock struct {
	Position Position
	Lines    []string
}

// IsEmpty reports whether the header has nothing to draw: no image data,
// no text and no blocks.
func (h *PageHeader) IsEmpty() bool {
	if h == nil {
		return true
	}
	return !h.hasImage() && !h.hasText() && len(h.Blocks) == 0
}

func (h *PageHeader) hasImage() bool {
	return h != nil && h.Image != nil && len(h.Image.Data) > 0
}

func (h *PageHeader) hasText() bool {
	return h != nil && h.Text != nil && h.Text.Text != ""
}

// textSuppressed reports whether the image occupies the text's position,
// in which case only the image is drawn.
func (h *PageHeader) textSuppressed() bool {
	return h.hasImage() && h.Text != nil && h.Image.Position == h.Text.Position
}

// headerTextAlign maps a header text position to its alignment around the
// page centre. Left and right are inverted on purpose: "l" puts the text
// to the left of the centre line, "r" to the right of it.
var headerTextAlign = map[Position]Align{
	PositionLeft:   AlignRight,
	PositionRight:  AlignLeft,
	PositionCenter: AlignCenter,
}

// RenderHeader draws h on the current page of s. It is a no-op for an
// empty header and fails with ErrTooManyHeaderObjects for more than three
// blocks.
func RenderHeader(s Surface, h *PageHeader, layout *Layout) error {
	return newHeaderRenderer(h, layout).render(s)
}

// headerRenderer draws one header on many pages, decoding the image once.
type headerRenderer struct {
	header *PageHeader
	layout *Layout
	image  *preparedImage
}

func newHeaderRenderer(h *PageHeader, layout *Layout) *headerRenderer {
	if layout == nil {
		layout = DefaultLayout()
	}
	return &headerRenderer{header: h, layout: layout}
}

func (r *headerRenderer) render(s Surface) error {
	h := r.header
	if h.IsEmpty() {
		return nil
	}
	if len(h.Blocks) > maxHeaderBlocks {
		return configErrorf(TooManyHeaderObjects, "you have provided %d header objects, at most %d are allowed", len(h.Blocks), maxHeaderBlocks)
	}

	s.SetDrawColor(r.layout.RuleColor)

	if h.hasImage() {
		if err := r.drawImage(s); err != nil {
			return err
		}
	}

	for _, b := range h.Blocks {
		r.drawBlock(s, b)
	}

	if h.hasText() && !h.textSuppressed() {
		size := h.Text.Size
		if size <= 0 {
			size = r.layout.HeaderTextSize
		}
		align, ok := headerTextAlign[h.Text.Position]
		if !ok {
			align = AlignCenter
		}
		w, _ := s.PageSize()
		s.SetFont(StyleNormal, size)
		s.Text(w/2, r.layout.HeaderTextY, h.Text.Text, align)
	}
	return nil
}

func (r *headerRenderer) drawImage(s Surface) error {
	if r.image == nil {
		img, err := decodeHeaderImage(r.header.Image.Data)
		if err != nil {
			return err
		}
		r.image = img
	}
	l := r.layout
	pw, _ := s.PageSize()
	h := l.HeaderImageHeight
	w := h * r.image.aspect()

	var x float64
	switch r.header.Image.Position {
	case PositionLeft:
		x = l.MarginLeft
	case PositionRight:
		x = l.rightEdge(pw) - w
	default:
		x = pw/2 - w/2
	}
	return s.Image(r.image.name, r.image.data, r.image.typ, x, l.HeaderImageY, w, h)
}

// blockSlot is where one line of a header block goes.
type blockSlot struct {
	x, y  float64
	align Align
}

// blockSlots returns the three line slots for a block position. The
// fallback layout sits lower and tighter than "l".
func (r *headerRenderer) blockSlots(pos Position, pageWidth float64) [maxHeaderLines]blockSlot {
	left := r.layout.MarginLeft
	right := r.layout.rightEdge(pageWidth)
	mid := pageWidth / 2
	switch pos {
	case PositionLeft:
		return [maxHeaderLines]blockSlot{{left, 10, AlignLeft}, {left, 13, AlignLeft}, {left, 16, AlignLeft}}
	case PositionRight:
		return [maxHeaderLines]blockSlot{{right - 20, 10, AlignLeft}, {right - 20, 13, AlignLeft}, {right, 16, AlignRight}}
	case PositionCenter:
		return [maxHeaderLines]blockSlot{{mid, 10, AlignLeft}, {mid, 13, AlignLeft}, {mid, 16, AlignRight}}
	default:
		return [maxHeaderLines]blockSlot{{left, 12, AlignLeft}, {left, 14, AlignLeft}, {left, 16, AlignLeft}}
	}
}

func (r *headerRenderer) drawBlock(s Surface, b HeaderBlock) {
	pw, _ := s.PageSize()
	slots := r.blockSlots(b.Position, pw)
	for i, line := range b.Lines {
		if i >= maxHeaderLines {
			break
		}
		if line == "" {
			continue
		}
		style := StyleNormal
		if i == 0 {
			style = StyleBold
		}
		s.SetFont(style, r.layout.HeaderFontSize)
		s.Text(slots[i].x, slots[i].y, line, slots[i].align)
	}
}
