package printing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateEngine renders the built-in HTML templates
type TemplateEngine struct {
	templates *template.Template
}

// NewTemplateEngine parses the embedded templates with the formatting helpers
func NewTemplateEngine() *TemplateEngine {
	funcMap := template.FuncMap{
		"formatMoney":    formatMoney,
		"formatDateTime": formatDateTime,
		"title":          titleCase,
		"upper":          strings.ToUpper,
		"inc":            func(i int) int { return i + 1 },
	}
	return &TemplateEngine{
		templates: template.Must(template.New("printing").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")),
	}
}

// Render executes the named template
func (e *TemplateEngine) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to execute template "+name, err)
	}
	return buf.String(), nil
}

// formatMoney formats an amount with two decimals, thousands separated by a space,
// followed by the currency code. Example: 1234.5 CZK -> "1 234.50 CZK"
func formatMoney(amount decimal.Decimal, currency string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(digit)
	}

	out := fmt.Sprintf("%s%s.%s", sign, grouped.String(), fracPart)
	if currency != "" {
		out += " " + currency
	}
	return out
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// titleCase capitalizes carrier names that the feed delivers in lowercase
func titleCase(s string) string {
	if s != strings.ToLower(s) {
		return s
	}
	return cases.Title(language.Und).String(s)
}
