// Package templator is the template-rendering collaborator: the core hands
// it a template name, a folder and a context and gets body text back.
package templator

import (
	"html/template"
	"path/filepath"
	"strings"
)

type Renderer interface {
	Render(name, folder string, ctx map[string]interface{}) (string, error)
}

// HTMLRenderer renders html/template files from disk on every call.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) Render(name, folder string, ctx map[string]interface{}) (string, error) {
	tpl, err := template.ParseFiles(filepath.Join(folder, name))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := tpl.Execute(&sb, ctx); err != nil {
		return "", err
	}
	return sb.String(), nil
}
