package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"uobsurvey/pkg/utils"
)

const (
	pdfMargin     = 18.0
	pdfFont       = "Helvetica"
	pdfBodySize   = 10.5
	pdfLineHeight = 5.5
	pdfIndent     = 6.0
)

var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12}

// replacements covers characters LLM output uses that cp1252 cannot encode.
var replacements = strings.NewReplacer(
	"→", "->", "←", "<-", "≥", ">=", "≤", "<=", "✓", "v", "✅", "[x]", "❌", "[ ]", " ", " ",
)

// RenderPDF lays the Markdown document out as an A4 PDF.
func RenderPDF(doc string) ([]byte, error) {
	src := []byte(doc)
	root := markdown.Parser().Parse(text.NewReader(src))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle("Data Infrastructure Assessment Report", true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, src: src, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		w.block(n, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w: %w", utils.ErrExport, err)
	}
	return buf.Bytes(), nil
}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	src []byte
	tr  func(string) string
}

func (w *pdfWriter) block(n ast.Node, depth int) {
	switch node := n.(type) {
	case *ast.Heading:
		size, ok := headingSizes[node.Level]
		if !ok {
			size = pdfBodySize
		}
		w.pdf.Ln(2)
		w.write(inlineText(node, w.src), "B", size, size*0.5, depth)
		w.pdf.Ln(1)
	case *ast.Paragraph, *ast.TextBlock:
		w.write(inlineText(node, w.src), "", pdfBodySize, pdfLineHeight, depth)
		w.pdf.Ln(1.5)
	case *ast.List:
		w.list(node, depth)
		w.pdf.Ln(1)
	case *ast.ThematicBreak:
		w.rule()
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		w.write(blockLines(node, w.src), "", 9, 4.5, depth+1)
		w.pdf.Ln(1)
	case *ast.Blockquote:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			w.block(c, depth+1)
		}
	case *east.Table:
		w.table(node)
	default:
		if t := inlineText(node, w.src); strings.TrimSpace(t) != "" {
			w.write(t, "", pdfBodySize, pdfLineHeight, depth)
		}
	}
}

func (w *pdfWriter) list(l *ast.List, depth int) {
	i := l.Start
	if i == 0 {
		i = 1
	}
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if l.IsOrdered() {
			marker = strconv.Itoa(i) + ". "
			i++
		}

		first := true
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if _, nested := c.(*ast.List); nested || !first {
				w.block(c, depth+1)
				continue
			}
			w.write(marker+inlineText(c, w.src), "", pdfBodySize, pdfLineHeight, depth+1)
			first = false
		}
	}
}

func (w *pdfWriter) table(t *east.Table) {
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, strings.TrimSpace(inlineText(cell, w.src)))
		}
		style := ""
		if _, header := row.(*east.TableHeader); header {
			style = "B"
		}
		w.write(strings.Join(cells, "  |  "), style, 9.5, 5, 0)
	}
	w.pdf.Ln(1.5)
}

func (w *pdfWriter) rule() {
	pageW, _ := w.pdf.GetPageSize()
	y := w.pdf.GetY() + 2
	w.pdf.SetDrawColor(180, 180, 180)
	w.pdf.Line(pdfMargin, y, pageW-pdfMargin, y)
	w.pdf.SetY(y + 3)
}

func (w *pdfWriter) write(s, style string, size, lineHeight float64, depth int) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	w.pdf.SetFont(pdfFont, style, size)
	w.pdf.SetX(pdfMargin + float64(depth)*pdfIndent)
	w.pdf.MultiCell(0, lineHeight, w.tr(replacements.Replace(s)), "", "L", false)
}

// inlineText flattens the inline content of a node, skipping nested lists.
func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.List:
			if c != n {
				return ast.WalkSkipChildren, nil
			}
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.HardLineBreak() {
				sb.WriteByte('\n')
			} else if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

func blockLines(n ast.Node, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return sb.String()
}
