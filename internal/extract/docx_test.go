package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`

const documentFooter = `<w:sectPr/></w:body></w:document>`

// buildDocx zips body into a minimal word document.
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentHeader + body + documentFooter))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func paragraph(text string) string {
	if text == "" {
		return `<w:p/>`
	}
	return `<w:p><w:r><w:t xml:space="preserve">` + text + `</w:t></w:r></w:p>`
}

func TestDocxText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "paragraphs keep order and empty lines",
			body: paragraph("Hello") + paragraph("") + paragraph("World"),
			want: "Hello\n\nWorld",
		},
		{
			name: "runs are concatenated",
			body: `<w:p><w:r><w:t>Hel</w:t></w:r><w:r><w:rPr><w:b/></w:rPr><w:t>lo</w:t></w:r></w:p>`,
			want: "Hello",
		},
		{
			name: "tabs and breaks",
			body: `<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p>`,
			want: "a\tb\nc",
		},
		{
			name: "hyperlink text is kept",
			body: `<w:p><w:r><w:t xml:space="preserve">see </w:t></w:r><w:hyperlink r:id="rId5"><w:r><w:t>docs</w:t></w:r></w:hyperlink></w:p>`,
			want: "see docs",
		},
		{
			name: "table content is skipped",
			body: paragraph("before") +
				`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
				paragraph("after"),
			want: "before\nafter",
		},
		{
			name: "empty body",
			body: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildDocx(t, tt.body)

			got, err := DocxText(bytes.NewReader(data), int64(len(data)))

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected text (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDocxTextErrors(t *testing.T) {
	t.Run("not a zip archive", func(t *testing.T) {
		data := []byte("definitely not a docx")
		_, err := DocxText(bytes.NewReader(data), int64(len(data)))
		assert.Error(t, err)
	})

	t.Run("zip without document part", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create("hello.txt")
		require.NoError(t, err)
		_, _ = w.Write([]byte("hi"))
		require.NoError(t, zw.Close())

		_, err = DocxText(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		assert.ErrorIs(t, err, ErrNotDocx)
	})
}
