package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlain(t *testing.T) {
	extractor := NewTextExtractor(1024)

	text, err := extractor.ExtractText("resume.TXT", []byte("  Jane Doe  \n\n\n  Go, Python\n"))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nGo, Python", text)
}

func TestExtractTextRejectsUnsupportedExtension(t *testing.T) {
	extractor := NewTextExtractor(1024)

	_, err := extractor.ExtractText("resume.rtf", []byte("hello"))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "invalid file extension")
}

func TestExtractTextRejectsEmptyContent(t *testing.T) {
	extractor := NewTextExtractor(1024)

	_, err := extractor.ExtractText("blank.txt", []byte(" \n \n"))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "no text content")
}

func TestExtractTextRejectsBinaryText(t *testing.T) {
	extractor := NewTextExtractor(1024)

	_, err := extractor.ExtractText("resume.txt", []byte{0xff, 0xfe, 0xfd})

	assert.Error(t, err)
}

func TestExtractTextRejectsBrokenPDF(t *testing.T) {
	extractor := NewTextExtractor(1024)

	_, err := extractor.ExtractText("resume.pdf", []byte("definitely not a pdf"))

	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("\n  a \n\n\t\n b  \n"))
	assert.Equal(t, "", CleanText("   "))
}

// buildDocx returns a minimal .docx holding documentXML as its body.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"word/document.xml": documentXML,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

// buildPDF returns a one-page PDF with one text object per line.
func buildPDF(lines ...string) []byte {
	var content bytes.Buffer
	for i, line := range lines {
		fmt.Fprintf(&content, "BT /F1 12 Tf 72 %d Td (%s) Tj ET\n", 720-i*20, line)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func TestExtractTextDocx(t *testing.T) {
	extractor := NewTextExtractor(1024 * 1024)
	data := buildDocx(t, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`+
		`<w:p><w:r><w:t>Go &amp; Python</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>AWS</w:t><w:tab/><w:t>K8s</w:t></w:r></w:p>`+
		`<w:p></w:p>`+
		`</w:body></w:document>`)

	text, err := extractor.ExtractText("resume.docx", data)
	require.NoError(t, err)

	assert.Equal(t, "Go & Python\nAWS\tK8s", text)
}

func TestExtractTextRejectsBrokenDocx(t *testing.T) {
	extractor := NewTextExtractor(1024)

	_, err := extractor.ExtractText("resume.docx", []byte("PK not really a zip"))

	assert.Error(t, err)
}

func TestExtractTextPDF(t *testing.T) {
	extractor := NewTextExtractor(1024 * 1024)

	text, err := extractor.ExtractText("resume.pdf", buildPDF("Senior Go Engineer", "Kubernetes and AWS"))
	require.NoError(t, err)

	assert.Equal(t, "Senior Go Engineer\nKubernetes and AWS", text)
}
