package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

var (
	tiffHeader = []byte("II*\x00\x08\x00\x00\x00")
	heicHeader = []byte("\x00\x00\x00\x18ftypheic\x00\x00\x00\x00mif1heic")
	svgBody    = []byte(`<svg xmlns="http://www.w3.org/2000/svg"><circle r="4"/></svg>`)
)

func TestSniff(t *testing.T) {
	ct, err := Sniff(pngHeader, "")
	assert.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	ct, err = Sniff([]byte("\xff\xd8\xff\xe0 jfif"), "application/octet-stream")
	assert.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)

	_, err = Sniff([]byte("just some text"), "")
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = Sniff(nil, "image/png")
	assert.ErrorIs(t, err, ErrEmptyUpload)
}

func TestSniffTrustsDeclaredImageType(t *testing.T) {
	cases := []struct {
		name     string
		data     []byte
		declared string
		want     string
	}{
		{"tiff", tiffHeader, "image/tiff", "image/tiff"},
		{"heic", heicHeader, "image/heic", "image/heic"},
		{"svg", svgBody, "image/svg+xml", "image/svg+xml"},
		{"params and case", heicHeader, "Image/HEIC; name=leaf.heic", "image/heic"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ct, err := Sniff(tc.data, tc.declared)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, ct)
		})
	}

	t.Run("unsniffable without image declaration", func(t *testing.T) {
		for _, declared := range []string{"", "application/octet-stream", "not a media type"} {
			_, err := Sniff(heicHeader, declared)
			assert.ErrorIs(t, err, ErrNotImage, declared)
		}
	})
}

func TestCanned(t *testing.T) {
	d := Canned()
	assert.Equal(t, "Late Blight (Phytophthora infestans)", d.Disease)
	assert.Equal(t, 94.5, d.Confidence)
	assert.Equal(t, "high", d.Severity)
	assert.Contains(t, d.Treatment, "Metalaxyl + Mancozeb @ 2.5g/L")
	assert.Contains(t, d.Prevention, "resistant varieties")
}
