package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyExt(t *testing.T) {
	cases := []struct {
		ext  string
		kind FileKind
		ok   bool
	}{
		{".jpg", KindImage, true},
		{".JPEG", KindImage, true},
		{"png", KindImage, true},
		{".gif", KindImage, true},
		{".bmp", KindImage, true},
		{".pdf", KindDocument, true},
		{".PDF", KindDocument, true},
		{".txt", "", false},
		{".docx", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		kind, ok := ClassifyExt(tc.ext)
		assert.Equal(t, tc.ok, ok, tc.ext)
		assert.Equal(t, tc.kind, kind, tc.ext)
	}
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "jpg", NormalizeExt(".JPG"))
	assert.Equal(t, "pdf", NormalizeExt("pdf"))
	assert.Equal(t, "", NormalizeExt("."))
}
