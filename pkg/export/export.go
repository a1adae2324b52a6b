package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"uobsurvey/pkg/utils"
)

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
)

// ParseFormat accepts the format names and their usual file extensions.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	case "html", "htm":
		return FormatHTML, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%q: %w", s, utils.ErrInvalidFormat)
	}
}

// Rendered is a document ready to be served as a download.
type Rendered struct {
	Data        []byte
	ContentType string
	Extension   string
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

func Render(format Format, doc string) (Rendered, error) {
	switch format {
	case FormatMarkdown:
		return Rendered{Data: RenderMarkdown(doc), ContentType: "text/markdown; charset=utf-8", Extension: "md"}, nil
	case FormatText:
		return Rendered{Data: RenderMarkdown(doc), ContentType: "text/plain; charset=utf-8", Extension: "txt"}, nil
	case FormatHTML:
		data, err := RenderHTML(doc)
		if err != nil {
			return Rendered{}, err
		}
		return Rendered{Data: data, ContentType: "text/html; charset=utf-8", Extension: "html"}, nil
	case FormatPDF:
		data, err := RenderPDF(doc)
		if err != nil {
			return Rendered{}, err
		}
		return Rendered{Data: data, ContentType: "application/pdf", Extension: "pdf"}, nil
	default:
		return Rendered{}, fmt.Errorf("%q: %w", format, utils.ErrInvalidFormat)
	}
}

func RenderMarkdown(doc string) []byte {
	return []byte(doc)
}

// RenderHTMLFragment converts the Markdown document into HTML body markup.
func RenderHTMLFragment(doc string) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(doc), &body); err != nil {
		return nil, fmt.Errorf("rendering html: %w: %w", utils.ErrExport, err)
	}
	return body.Bytes(), nil
}

// RenderHTML converts the Markdown document into a standalone HTML page.
func RenderHTML(doc string) ([]byte, error) {
	body, err := RenderHTMLFragment(doc)
	if err != nil {
		return nil, err
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<style>body{font-family:Arial,sans-serif;max-width:900px;margin:2rem auto;color:#333;line-height:1.5}table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:4px 8px}</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body)
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
