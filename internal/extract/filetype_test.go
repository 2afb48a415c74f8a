package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"photo.png", true},
		{"photo.PNG", true},
		{"scan.jpg", true},
		{"scan.JPEG", true},
		{"report.pdf", true},
		{"notes.DocX", true},
		{"archive.tar.pdf", true},
		{"animation.gif", false},
		{"notes.txt", false},
		{"noextension", false},
		{"trailingdot.", false},
		{"pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.filename))
		})
	}
}

func TestExtension(t *testing.T) {
	ext, ok := Extension("A.B.DOCX")
	assert.True(t, ok)
	assert.Equal(t, "docx", ext)

	_, ok = Extension("README")
	assert.False(t, ok)
}

func TestAllowedExtensions(t *testing.T) {
	got := AllowedExtensions()
	assert.Equal(t, []string{"docx", "jpeg", "jpg", "pdf", "png"}, got)

	got[0] = "exe"
	assert.False(t, Allowed("x.exe"))
}

func TestIsDocument(t *testing.T) {
	assert.True(t, IsDocument("docx"))
	assert.False(t, IsDocument("pdf"))
	assert.False(t, IsDocument("png"))
}

func TestResolveMIME(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		ext      string
		want     string
	}{
		{"declared wins", "image/png", "png", "image/png"},
		{"empty uses extension", "", "jpg", "image/jpeg"},
		{"octet stream uses extension", "application/octet-stream", "pdf", "application/pdf"},
		{"unknown extension keeps octet stream", "application/octet-stream", "bin", "application/octet-stream"},
		{"nothing known", "", "bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMIME(tt.declared, tt.ext))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, PDFPlaceholder, Placeholder("pdf", "application/octet-stream"))
	assert.Equal(t, PDFPlaceholder, Placeholder("png", "application/pdf"))
	assert.Equal(t, ImagePlaceholder, Placeholder("png", "image/png"))
	assert.Equal(t, ImagePlaceholder, Placeholder("jpeg", "image/jpeg"))
}

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My cool movie.mov", "My_cool_movie.mov"},
		{"../../../etc/passwd", "etc_passwd"},
		{"../../etc/my file.png", "etc_my_file.png"},
		{`C:\Users\me\scan.pdf`, "C_Users_me_scan.pdf"},
		{"i contain cool \xfcml\xe4uts.txt", "i_contain_cool_mluts.txt"},
		{"i contain cool ümläuts.txt", "i_contain_cool_umlauts.txt"},
		{"résumé.docx", "resume.docx"},
		{"con.png", "_con.png"},
		{"...", ""},
		{"report.PDF", "report.PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SecureFilename(tt.in))
		})
	}
}
