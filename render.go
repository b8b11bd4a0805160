package pdoc

import (
	"embed"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/etnz/pdoc/date"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// docFuncs are the formatters available inside document templates.
// Every user-supplied string goes through esc on its way into LaTeX.
var docFuncs = template.FuncMap{
	"esc":  EscapeLatex,
	"long": func(d date.Date) string { return d.Long() },
	"usd":  func(p PriceUSD) string { return EscapeLatex(p.Display()) },
	"qty": func(q float32) string {
		return strconv.FormatFloat(float64(q), 'f', -1, 32)
	},
	"total": func(inv Invoice) string {
		return EscapeLatex(PriceUSD(inv.Total().InexactFloat64()).Display())
	},
	"href": func(url, text string) string {
		return fmt.Sprintf(`\href{%s}{%s}`, escapeLatexURL(url), EscapeLatex(text))
	},
	"payment": paymentLatex,
}

// paymentLatex renders a payment method for LaTeX output. A method
// with nothing to display is a formatter error that fails the whole
// template fill.
func paymentLatex(m PaymentMethod) (string, error) {
	display := m.Display()
	if display == "" {
		return "", fmt.Errorf("payment method has no name or display text")
	}
	if m.URL != "" {
		return fmt.Sprintf(`\href{%s}{%s}`, escapeLatexURL(m.URL), EscapeLatex(display)), nil
	}
	return EscapeLatex(display), nil
}

// renderDocument fills the named embedded template with data.
func renderDocument(name string, data any) (string, error) {
	t, err := template.New(name).Funcs(docFuncs).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("parsing template %q: %w", name, err)
	}
	var b strings.Builder
	if err := t.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("filling template %q: %w", name, err)
	}
	return b.String(), nil
}

// RenderLatex fills the invoice template with the aggregate's fields.
func (f FullInvoice) RenderLatex() (string, error) {
	return renderDocument("invoice.tex.tmpl", f)
}

// Filename names the rendered PDF for this invoice.
func (f FullInvoice) Filename() string {
	return fmt.Sprintf("Invoice_%s_%d.pdf", f.Me.NameNoSpaces(), f.Invoice.Number)
}

// SavePDF renders the invoice and compiles it into the pdfs directory,
// returning the written path. With showSource, the LaTeX source is
// printed before compiling.
func (f FullInvoice) SavePDF(s *Store, showSource bool) (string, error) {
	tex, err := f.RenderLatex()
	if err != nil {
		return "", fmt.Errorf("rendering invoice template: %w", err)
	}
	if showSource {
		fmt.Println(tex)
	}
	dir, err := s.PDFsDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, f.Filename())
	if err := CompileLatex(tex, path); err != nil {
		return "", fmt.Errorf("compiling invoice LaTeX to PDF: %w", err)
	}
	return path, nil
}

// RenderLatex fills the receipt template with the aggregate's fields.
func (f FullReceipt) RenderLatex() (string, error) {
	return renderDocument("receipt.tex.tmpl", f)
}

// Filename names the rendered PDF for this receipt.
func (f FullReceipt) Filename() string {
	return fmt.Sprintf("Receipt_%s_%d.pdf", f.Me.NameNoSpaces(), f.Invoice.Number)
}

// SavePDF renders the receipt and compiles it into the pdfs directory,
// returning the written path. With showSource, the LaTeX source is
// printed before compiling.
func (f FullReceipt) SavePDF(s *Store, showSource bool) (string, error) {
	tex, err := f.RenderLatex()
	if err != nil {
		return "", fmt.Errorf("rendering receipt template: %w", err)
	}
	if showSource {
		fmt.Println(tex)
	}
	dir, err := s.PDFsDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, f.Filename())
	if err := CompileLatex(tex, path); err != nil {
		return "", fmt.Errorf("compiling receipt LaTeX to PDF: %w", err)
	}
	return path, nil
}
