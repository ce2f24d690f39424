package web

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed views/*.html
var views embed.FS

var templates = template.Must(template.ParseFS(views, "views/*.html"))

// pageData feeds the index template.
type pageData struct {
	CanvasWidth  int
	CanvasHeight int
	CellSize     int
	ConnectPath  string
}

// Render executes the named template block.
func Render(blockName string, data any) (bytes.Buffer, error) {
	buffer := bytes.Buffer{}
	err := templates.ExecuteTemplate(&buffer, blockName, data)
	return buffer, err
}
