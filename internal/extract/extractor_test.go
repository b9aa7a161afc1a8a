package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestExtractPlain(t *testing.T) {
	e := NewExtractor()
	text, err := e.ExtractBytes([]byte("section 6 of the act"), ".txt")
	if err != nil {
		t.Fatalf("plain extraction failed: %v", err)
	}
	if text != "section 6 of the act" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestExtractPlainInvalidUTF8(t *testing.T) {
	e := NewExtractor()
	text, err := e.ExtractBytes([]byte{0x66, 0xff, 0x6f}, ".md")
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	if !strings.Contains(text, "�") {
		t.Error("invalid bytes should be replaced")
	}
}

func TestExtractUnknownExtensionFallsBackToPlain(t *testing.T) {
	e := NewExtractor()
	text, err := e.ExtractBytes([]byte("hello"), ".xyz")
	if err != nil || text != "hello" {
		t.Errorf("expected plain fallback, got %q err %v", text, err)
	}
}

// buildDocx assembles a minimal .docx zip with the given document.xml body.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractDOCX(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p w:rsidR="00A"><w:r><w:t>Right to</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t xml:space="preserve">Information</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	e := NewExtractor()
	text, err := e.ExtractBytes(buildDocx(t, doc), ".docx")
	if err != nil {
		t.Fatalf("docx extraction failed: %v", err)
	}
	if text != "Right to Information" {
		t.Errorf("unexpected docx text: %q", text)
	}
}

func TestExtractDOCXNotAZip(t *testing.T) {
	e := NewExtractor()
	if _, err := e.ExtractBytes([]byte("not a zip"), ".docx"); err == nil {
		t.Error("expected error for invalid docx")
	}
}

func TestExtractPDFInvalid(t *testing.T) {
	e := NewExtractor()
	if _, err := e.ExtractBytes([]byte("not a pdf"), ".pdf"); err == nil {
		t.Error("expected error for invalid pdf")
	}
}
