package extract

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"io"
	"log"
	"path"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"folio/internal/domain"
)

func extractDOCX(data []byte) (*domain.ExtractedContent, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ParseError{Format: "docx", Err: err}
	}
	defer func() { _ = doc.Close() }()

	paragraphs := paragraphsFromDocumentXML(doc.Editable().GetContent())
	text := strings.Join(paragraphs, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyExtraction
	}

	return &domain.ExtractedContent{
		Text:   text,
		Images: docxImages(data),
	}, nil
}

// paragraphsFromDocumentXML walks the word/document.xml markup and returns
// the non-empty paragraph texts in document order, concatenating the <w:t>
// runs of each <w:p>.
func paragraphsFromDocumentXML(content string) []string {
	dec := xml.NewDecoder(strings.NewReader(content))
	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = inParagraph
			case "tab":
				if inParagraph {
					current.WriteString("\t")
				}
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					if p := current.String(); strings.TrimSpace(p) != "" {
						paragraphs = append(paragraphs, p)
					}
				}
				inParagraph = false
			}
		}
	}
	return paragraphs
}

type relationships struct {
	Relationships []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type contentTypeDefaults struct {
	Defaults []struct {
		Extension   string `xml:"Extension,attr"`
		ContentType string `xml:"ContentType,attr"`
	} `xml:"Default"`
}

// docxImages scans the document relationships for image parts and returns
// their payloads as data URLs. Best-effort: any failure yields fewer images,
// never an error. Ordering follows the relationship table, which is not
// guaranteed to match the visual placement order in the document.
func docxImages(data []byte) []string {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Printf("extract.docxImages: opening docx archive failed: %v", err)
		return []string{}
	}

	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = f
	}

	rels, err := readRelationships(parts["word/_rels/document.xml.rels"])
	if err != nil {
		log.Printf("extract.docxImages: reading relationships failed: %v", err)
		return []string{}
	}
	ctypes := readContentTypes(parts["[Content_Types].xml"])

	images := make([]string, 0, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		if !strings.HasSuffix(rel.Type, "/image") {
			continue
		}
		// Targets are relative to the word/ part.
		target := path.Clean(path.Join("word", rel.Target))
		part, ok := parts[target]
		if !ok {
			log.Printf("extract.docxImages: missing image part %s for relationship %s", target, rel.ID)
			continue
		}
		payload, err := readZipFile(part)
		if err != nil {
			log.Printf("extract.docxImages: reading image part %s failed: %v", target, err)
			continue
		}
		ctype := ctypes[strings.TrimPrefix(strings.ToLower(path.Ext(target)), ".")]
		if ctype == "" {
			ctype = "image/png"
		}
		images = append(images, "data:"+ctype+";base64,"+base64.StdEncoding.EncodeToString(payload))
	}
	return images
}

func readRelationships(f *zip.File) (*relationships, error) {
	if f == nil {
		return &relationships{}, nil
	}
	raw, err := readZipFile(f)
	if err != nil {
		return nil, err
	}
	var rels relationships
	if err := xml.Unmarshal(raw, &rels); err != nil {
		return nil, err
	}
	return &rels, nil
}

// readContentTypes maps part extensions to declared content types. A missing
// or unreadable [Content_Types].xml just means fallback types.
func readContentTypes(f *zip.File) map[string]string {
	types := map[string]string{}
	if f == nil {
		return types
	}
	raw, err := readZipFile(f)
	if err != nil {
		return types
	}
	var defaults contentTypeDefaults
	if err := xml.Unmarshal(raw, &defaults); err != nil {
		return types
	}
	for _, d := range defaults.Defaults {
		types[strings.ToLower(d.Extension)] = d.ContentType
	}
	return types
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
