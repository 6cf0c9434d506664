package cv

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaType(t *testing.T) {
	tests := []struct {
		filename string
		data     []byte
		want     string
	}{
		{"resume.PDF", nil, MimePDF},
		{"resume.docx", nil, MimeDOCX},
		{"resume.txt", nil, MimeText},
		{"upload", []byte("%PDF-1.7\n%âãÏÓ\n"), MimePDF},
		{"upload", []byte("John Smith\nSoftware Engineer"), MimeText},
		{"photo.png", []byte("\x89PNG\r\n\x1a\n"), "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, MediaType(tt.filename, tt.data))
		})
	}
}

func TestParse_PlainText(t *testing.T) {
	p := NewCVParser()

	text, err := p.Parse(context.Background(), "resume.txt", []byte("John Smith  \r\nSoftware Engineer\r\n\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "John Smith\nSoftware Engineer", text)
}

func TestParse_Unsupported(t *testing.T) {
	p := NewCVParser()

	_, err := p.Parse(context.Background(), "photo.png", []byte("\x89PNG\r\n\x1a\n"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestParse_InvalidPDF(t *testing.T) {
	p := NewCVParser()

	_, err := p.Parse(context.Background(), "resume.pdf", []byte("not really a pdf"))
	assert.Error(t, err)
}

// buildPDF writes a one-page PDF that places each line 14pt below the last
// with Td, the way most generators lay out body text.
func buildPDF(lines ...string) []byte {
	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for i, line := range lines {
		if i > 0 {
			content.WriteString("0 -14 Td\n")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", line)
	}
	content.WriteString("ET")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestExtractPDFText_KeepsLines(t *testing.T) {
	data := buildPDF("John Smith", "Software Engineer", "john@x.com")

	text, err := extractPDFText(data)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	assert.Equal(t, []string{"John Smith", "Software Engineer", "john@x.com"}, lines)
}

func TestParse_PDFFeedsExtractors(t *testing.T) {
	p := NewCVParser()
	e := newTestExtractor(t)

	text, err := p.Parse(context.Background(), "resume.pdf", buildPDF("John Smith", "Software Engineer", "john@x.com"))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(splitLines(text)), 3)
	name := e.Name(text)
	require.NotNil(t, name)
	assert.Equal(t, "John Smith", *name)
	assert.Equal(t, []string{"john@x.com"}, e.Contact(text).Emails)
}

func corruptXrefPDF() []byte {
	// Object 1 now points into the file header.
	return bytes.Replace(buildPDF("John Smith"),
		[]byte("0000000009 00000 n \n"), []byte("0000000003 00000 n \n"), 1)
}

func TestSafeConvert_CorruptXref(t *testing.T) {
	data := corruptXrefPDF()

	text, err := safeConvert("resume.pdf", func() (string, error) {
		return extractPDFText(data)
	})

	assert.Empty(t, text)
	assert.ErrorContains(t, err, "decode panic")
}

func TestParse_CorruptXrefDoesNotCrash(t *testing.T) {
	p := NewCVParser()

	// pdftotext may repair the table when installed; the fallback reader panics.
	text, err := p.Parse(context.Background(), "resume.pdf", corruptXrefPDF())
	if err == nil {
		assert.Contains(t, text, "John Smith")
	}
}
