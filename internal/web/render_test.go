package web

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = r.Instance(PageError, map[string]any{
		"Title":   "Erro",
		"Active":  "",
		"Status":  502,
		"Message": "API fora do ar",
	}).Render(w)
	require.NoError(t, err)
	assert.Contains(t, w.Body.String(), "API fora do ar")
}

func TestMediaURL(t *testing.T) {
	rewrite := mediaURL("http://127.0.0.1:8000/")

	assert.Equal(t, "/media/carros/1.jpg", rewrite("http://127.0.0.1:8000/media/carros/1.jpg"))
	assert.Equal(t, "/media/carros/1.jpg", rewrite("/media/carros/1.jpg"))
	assert.Equal(t, "https://cdn.example.com/media/1.jpg", rewrite("https://cdn.example.com/media/1.jpg"))
	assert.Equal(t, "http://127.0.0.1:8000/static/x.css", rewrite("http://127.0.0.1:8000/static/x.css"))

	keep := mediaURL("")
	assert.Equal(t, "http://127.0.0.1:8000/media/1.jpg", keep("http://127.0.0.1:8000/media/1.jpg"))
}

func TestStaticFS(t *testing.T) {
	fs, err := StaticFS()
	require.NoError(t, err)

	f, err := fs.Open("style.css")
	require.NoError(t, err)
	defer f.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(f)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
