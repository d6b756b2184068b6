package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"weather-checker/internal/domain/entity"
	"weather-checker/internal/domain/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData feeds the index template
type PageData struct {
	Title         string
	Subtitle      string
	SelectLabel   string
	ButtonLabel   string
	ContextPath   string
	Places        []entity.Place
	Selected      string
	Card          *model.WeatherCardDTO
	ShowAnimation bool
	Error         string
}

// Renderer implements echo.Renderer over the embedded templates
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. It panics on a malformed template.
func NewRenderer() *Renderer {
	return &Renderer{templates: template.Must(template.ParseFS(templatesFS, "templates/*.html"))}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
