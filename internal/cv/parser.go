package cv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

// ErrUnsupportedType is returned for documents that are not PDF, DOCX or plain text.
var ErrUnsupportedType = errors.New("unsupported file type")

// CVParser turns an uploaded document into plain text.
type CVParser struct{}

func NewCVParser() *CVParser {
	return &CVParser{}
}

// MediaType resolves the document type from the file extension, falling back
// to content sniffing when the extension is missing or unknown.
func MediaType(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".text":
		return MimeText
	}

	sniffed := http.DetectContentType(data)
	switch {
	case sniffed == MimePDF:
		return MimePDF
	case strings.HasPrefix(sniffed, MimeText):
		return MimeText
	}
	return sniffed
}

// Parse extracts text from a PDF, DOCX or TXT document. Conversion runs on its
// own goroutine so a cancelled ctx releases the caller immediately.
func (p *CVParser) Parse(ctx context.Context, filename string, data []byte) (string, error) {
	mime := MediaType(filename, data)
	switch mime {
	case MimePDF, MimeDOCX, MimeText:
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := safeConvert(filename, func() (string, error) {
			return p.convert(mime, data)
		})
		done <- result{text, err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("document conversion cancelled: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			return "", r.err
		}
		return normalizeText(r.text), nil
	}
}

// safeConvert turns a panic in convert into an error. The pure-Go readers
// panic on malformed input, and this runs off the request goroutine where no
// middleware can catch it.
func safeConvert(filename string, convert func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Decoder] recovered panic decoding %s: %v", filename, r)
			text, err = "", fmt.Errorf("decode panic: %v", r)
		}
	}()
	return convert()
}

func (p *CVParser) convert(mime string, data []byte) (string, error) {
	if mime == MimeText {
		return string(data), nil
	}

	res, err := docconv.Convert(bytes.NewReader(data), mime, false)
	if err == nil && strings.TrimSpace(res.Body) != "" {
		return res.Body, nil
	}
	log.Printf("[Decoder] docconv failed for %s (%v), using fallback reader", mime, err)

	if mime == MimePDF {
		return extractPDFText(data)
	}
	return extractDocxText(data)
}

// rowTolerance is how far, in points, glyph baselines may drift and still
// count as the same line.
const rowTolerance = 1.0

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		writeRows(&sb, page.Content().Text)
	}
	return sb.String(), nil
}

// writeRows emits glyphs in content-stream order, starting a new line
// whenever the baseline moves. Content applies Td, TD, T* and Tm, so line
// moves of every kind are seen here.
func writeRows(sb *strings.Builder, glyphs []pdf.Text) {
	if len(glyphs) == 0 {
		return
	}
	y := glyphs[0].Y
	for _, g := range glyphs {
		if math.Abs(g.Y-y) > rowTolerance {
			sb.WriteByte('\n')
			y = g.Y
		}
		sb.WriteString(g.S)
	}
	sb.WriteByte('\n')
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllStringFunc(content, func(tag string) string {
		if strings.HasPrefix(tag, "<w:tab") {
			return "\t"
		}
		return "\n"
	})
	content = xmlTag.ReplaceAllString(content, "")
	return xmlUnescaper.Replace(content), nil
}

var xmlUnescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")

// normalizeText unifies line endings and trims trailing space on each line.
// Line structure is kept since extractors work line by line.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\u00a0", " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\f\v")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
