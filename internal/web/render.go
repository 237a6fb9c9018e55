package web

import (
	"fmt"
	"html/template"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
)

const layoutName = "layout.html"

// Page names accepted by Renderer.Instance.
const (
	PageCarros     = "carros.html"
	PageCarroForm  = "carro_form.html"
	PageModelos    = "modelos.html"
	PageModeloForm = "modelo_form.html"
	PageConfirm    = "confirm.html"
	PageNotFound   = "not_found.html"
	PageError      = "error.html"
)

// Renderer implements gin's render.HTMLRender. Every page is parsed
// together with the layout so each one can define its own "content".
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// NewRenderer parses every page. Image URLs under mediaOrigin/media/ are
// rendered as local /media/ paths; an empty mediaOrigin leaves them as is.
func NewRenderer(mediaOrigin string) (*Renderer, error) {
	names := []string{PageCarros, PageCarroForm, PageModelos, PageModeloForm, PageConfirm, PageNotFound, PageError}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		t, err := template.New(layoutName).
			Funcs(funcs).
			Funcs(template.FuncMap{"media": mediaURL(mediaOrigin)}).
			ParseFS(templatesFS, path.Join("templates", layoutName), path.Join("templates", name))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Instance renders page name inside the layout. Unknown names fall back
// to the error page.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		t = r.pages[PageError]
	}
	return render.HTML{Template: t, Name: layoutName, Data: data}
}

var funcs = template.FuncMap{
	"id": func(v int64) string {
		return strconv.FormatInt(v, 10)
	},
	"first": func(msgs []string) string {
		if len(msgs) == 0 {
			return ""
		}
		return msgs[0]
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Local().Format("02/01/2006 15:04")
	},
	"join": func(ids []int64) string {
		parts := make([]string, 0, len(ids))
		for _, v := range ids {
			parts = append(parts, strconv.FormatInt(v, 10))
		}
		return strings.Join(parts, ",")
	},
	"inc": func(i int) int {
		return i + 1
	},
}

func mediaURL(origin string) func(string) string {
	origin = strings.TrimRight(origin, "/")
	prefix := origin + "/media/"
	return func(u string) string {
		if origin != "" && strings.HasPrefix(u, prefix) {
			return strings.TrimPrefix(u, origin)
		}
		return u
	}
}
