package extract

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"
)

// ErrNotDocx is returned when an archive has no word/document.xml part.
var ErrNotDocx = errors.New("not a word document")

// DocxText returns the visible text of the document's body paragraphs in
// document order, one paragraph per line. Empty paragraphs yield empty lines.
// Paragraphs nested in tables are not part of the body list and are skipped.
func DocxText(r io.ReaderAt, size int64) (string, error) {
	doc, err := docx.Parse(r, size)
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	if doc.Document.XMLName.Local != "document" {
		return "", ErrNotDocx
	}

	lines := make([]string, 0, len(doc.Document.Body.Items))
	for _, item := range doc.Document.Body.Items {
		p, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		lines = append(lines, paragraphText(p))
	}
	return strings.Join(lines, "\n"), nil
}

func paragraphText(p *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range p.Children {
		switch c := child.(type) {
		case *docx.Run:
			writeRun(&sb, c)
		case *docx.Hyperlink:
			writeRun(&sb, &c.Run)
		}
	}
	return sb.String()
}

func writeRun(sb *strings.Builder, r *docx.Run) {
	for _, child := range r.Children {
		switch c := child.(type) {
		case *docx.Text:
			sb.WriteString(c.Text)
		case *docx.Tab:
			sb.WriteByte('\t')
		case *docx.BarterRabbet:
			sb.WriteByte('\n')
		}
	}
}
