package pdoc

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// latexEscaper rewrites the characters LaTeX treats as special, so
// that user-supplied text cannot corrupt the document structure.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// EscapeLatex escapes all LaTeX special characters in s.
func EscapeLatex(s string) string { return latexEscaper.Replace(s) }

// escapeLatexURL escapes s for use inside an \href address argument,
// where only a few characters are special.
func escapeLatexURL(s string) string {
	return strings.NewReplacer(`%`, `\%`, `#`, `\#`).Replace(s)
}

// CompileLatex compiles a LaTeX source document to a PDF at
// outputPath, using an external pdflatex found on the PATH. The
// compiler's own diagnostics are not interpreted: a non-zero exit is
// surfaced as-is along with the captured output.
func CompileLatex(tex string, outputPath string) error {
	tmpDir, err := os.MkdirTemp("", "pdoc-latex-")
	if err != nil {
		return fmt.Errorf("creating compilation directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	const basename = "document"
	texPath := filepath.Join(tmpDir, basename+".tex")
	pdfPath := filepath.Join(tmpDir, basename+".pdf")

	if err := os.WriteFile(texPath, []byte(tex), 0o644); err != nil {
		return fmt.Errorf("writing latex source: %w", err)
	}

	cmd := exec.Command("pdflatex", "-interaction=nonstopmode", "-halt-on-error", texPath)
	cmd.Dir = tmpDir
	if out, err := cmd.CombinedOutput(); err != nil {
		os.Stderr.Write(out)
		return fmt.Errorf("running pdflatex: %w", err)
	}

	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return fmt.Errorf("reading compiled pdf: %w", err)
	}
	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return fmt.Errorf("copying pdf to %q: %w", outputPath, err)
	}
	return nil
}
