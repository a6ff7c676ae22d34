// Package page renders highlighted text as a standalone HTML document.
package page

import (
	"errors"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/wbrown/text_to_sounds"
	"github.com/wbrown/text_to_sounds/pkg/stylesheet"
	"github.com/wbrown/text_to_sounds/resources"
)

const DefaultTitle = "Sounds"

type pageData struct {
	Title      string
	Stylesheet template.CSS
	Sentences  []template.HTML
}

var (
	pageTemplate     *template.Template
	pageTemplateErr  error
	pageTemplateOnce sync.Once
)

func loadTemplate() (*template.Template, error) {
	pageTemplateOnce.Do(func() {
		rsrc := resources.GetEmbeddedResource(resources.PageTemplate)
		if rsrc == nil {
			pageTemplateErr = errors.New("page template is not embedded")
			return
		}
		pageTemplate, pageTemplateErr = template.New(
			resources.PageTemplate).Parse(rsrc.Text())
	})
	return pageTemplate, pageTemplateErr
}

// Render
// Writes an HTML page with one paragraph per sentence of text. When the
// sentence splitter is unavailable the whole text becomes one paragraph.
// Sentence text is HTML escaped inside the highlight spans.
func Render(
	w io.Writer,
	text string,
	title string,
	palette stylesheet.Palette,
) error {
	tmpl, err := loadTemplate()
	if err != nil {
		return err
	}
	if title == "" {
		title = DefaultTitle
	}
	sentences, splitErr := text_to_sounds.SplitSentences(text)
	if splitErr != nil {
		sentences = []string{text}
	}
	data := pageData{
		Title:      title,
		Stylesheet: template.CSS(stylesheet.Generate(palette)),
		Sentences:  make([]template.HTML, 0, len(sentences)),
	}
	for _, sentence := range sentences {
		if strings.TrimSpace(sentence) == "" {
			continue
		}
		data.Sentences = append(data.Sentences,
			template.HTML(text_to_sounds.HighlightHTML(sentence)))
	}
	return tmpl.Execute(w, data)
}
