package views

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin/render"

	"turadmin/internal/format"
)

//go:embed templates
var files embed.FS

// Страницы; каждая собирается в свой template-set поверх layout,
// чтобы блок content не конфликтовал между страницами.
var pages = []string{
	"home", "dashboard", "profile",
	"login", "register",
	"agreements", "agreement_form",
}

var funcs = template.FuncMap{
	"formatNumber": format.FormatNumber,
	"truncate": func(s string, n int) string {
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n]) + "..."
	},
	"join": joinStrings,
}

func joinStrings(items []string, sep string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += sep
		}
		out += s
	}
	return out
}

// Renderer — html/template поверх gin.HTMLRender: имя страницы → набор
// layout+partials+страница.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: map[string]*template.Template{}}
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(files,
			"templates/layout.html",
			"templates/navbar.html",
			"templates/sidebar.html",
			"templates/pages/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

// Instance — gin вызывает её на каждый c.HTML.
func (r *Renderer) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r.templates[name],
		Name:     "layout.html",
		Data:     data,
	}
}
