package templates

import (
	"embed"
	"fmt"
	"registration/internal/core/domain/activation"

	"github.com/flosch/pongo2/v6"
)

//go:embed files
var files embed.FS

var names = []activation.TemplateName{activation.SubjectTemplate, activation.BodyTemplate}

// Pongo2Renderer renders the embedded Django-syntax email templates.
type Pongo2Renderer struct {
	templates map[activation.TemplateName]*pongo2.Template
}

func NewPongo2Renderer() (*Pongo2Renderer, error) {
	templates := make(map[activation.TemplateName]*pongo2.Template, len(names))
	for _, name := range names {
		source, err := files.ReadFile("files/" + string(name))
		if err != nil {
			return nil, fmt.Errorf("could not read template %s: %w", name, err)
		}
		tpl, err := pongo2.FromBytes(source)
		if err != nil {
			return nil, fmt.Errorf("could not parse template %s: %w", name, err)
		}
		templates[name] = tpl
	}
	return &Pongo2Renderer{templates: templates}, nil
}

func (r *Pongo2Renderer) Render(name activation.TemplateName, data activation.TemplateData) (string, error) {
	tpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template %s", name)
	}
	return tpl.Execute(pongo2.Context{
		"site": map[string]string{
			"name":   data.Site.Name,
			"domain": data.Site.Domain,
		},
		"activation_key":  string(data.ActivationKey),
		"expiration_days": data.ExpirationDays,
	})
}
