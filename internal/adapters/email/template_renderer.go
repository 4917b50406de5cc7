package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"campushub/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Each email is three files under templates/: <name>_subject.txt, <name>.txt and <name>.html.
const (
	subjectSuffix = "_subject.txt"
	textSuffix    = ".txt"
	htmlSuffix    = ".html"
)

type templateRenderer struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

// NewTemplateRenderer parses the embedded templates once. HTML bodies are escaped by
// html/template; subjects and text bodies are rendered verbatim.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	return &templateRenderer{text: text, html: html}, nil
}

func (r *templateRenderer) Render(name string, data any) (subject, htmlBody, textBody string, err error) {
	if r.text.Lookup(name+subjectSuffix) == nil {
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := r.text.ExecuteTemplate(&buf, name+subjectSuffix, data); err != nil {
		return "", "", "", fmt.Errorf("render %s subject: %w", name, err)
	}
	subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if err := r.text.ExecuteTemplate(&buf, name+textSuffix, data); err != nil {
		return "", "", "", fmt.Errorf("render %s text: %w", name, err)
	}
	textBody = buf.String()

	buf.Reset()
	if err := r.html.ExecuteTemplate(&buf, name+htmlSuffix, data); err != nil {
		return "", "", "", fmt.Errorf("render %s html: %w", name, err)
	}
	return subject, buf.String(), textBody, nil
}
