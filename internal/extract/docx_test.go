package extract_test

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
	"folio/internal/extract"
)

// tiny valid PNG (1x1 transparent pixel)
var pngPixel = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89, 0x00, 0x00, 0x00,
	0x0D, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9C, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82,
}

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Kim Minsu</w:t></w:r></w:p>
    <w:p><w:r><w:t>Backend</w:t></w:r><w:r><w:tab/></w:r><w:r><w:t>engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>   </w:t></w:r></w:p>
    <w:p><w:r><w:t>5 years at ABC Corp.</w:t></w:r></w:p>
  </w:body>
</w:document>`

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="png" ContentType="image/png"/>
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>
</Relationships>`

func buildDOCX(t *testing.T, withImage bool) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := map[string][]byte{
		"[Content_Types].xml":          []byte(contentTypesXML),
		"_rels/.rels":                  []byte(rootRelsXML),
		"word/document.xml":            []byte(documentXML),
		"word/_rels/document.xml.rels": []byte(documentRelsXML),
	}
	if withImage {
		files["word/media/image1.png"] = pngPixel
	}

	for name, data := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestExtract_DOCX_Text(t *testing.T) {
	data := buildDOCX(t, true)

	content, err := extract.Extract(data, "resume.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	require.NoError(t, err)

	lines := strings.Split(content.Text, "\n")
	require.Len(t, lines, 3) // whitespace-only paragraph dropped
	assert.Equal(t, "Kim Minsu", lines[0])
	assert.Equal(t, "Backend\tengineer", lines[1])
	assert.Equal(t, "5 years at ABC Corp.", lines[2])

	// DOCX has no page concept; the page count stays zero.
	assert.Zero(t, content.SourcePageCount)
}

func TestExtract_DOCX_Images(t *testing.T) {
	data := buildDOCX(t, true)

	content, err := extract.Extract(data, "resume.docx", "")
	require.NoError(t, err)

	require.Len(t, content.Images, 1)
	assert.True(t, strings.HasPrefix(content.Images[0], "data:image/png;base64,"))
}

func TestExtract_DOCX_MissingImagePart(t *testing.T) {
	// Relationship references an image part that is not in the archive;
	// text extraction still succeeds with no images.
	data := buildDOCX(t, false)

	content, err := extract.Extract(data, "resume.docx", "")
	require.NoError(t, err)
	assert.Empty(t, content.Images)
	assert.Contains(t, content.Text, "Kim Minsu")
}

func TestExtract_DOCX_Garbage(t *testing.T) {
	_, err := extract.Extract([]byte("not a zip"), "resume.docx", "")

	require.Error(t, err)
	var parseErr *extract.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "docx", parseErr.Format)
}

func TestExtract_DOCX_NoText(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"_rels/.rels":         rootRelsXML,
		"word/document.xml": `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body/></w:document>`,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(data))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	_, err := extract.Extract(buf.Bytes(), "resume.docx", "")
	assert.ErrorIs(t, err, domain.ErrEmptyExtraction)
}
