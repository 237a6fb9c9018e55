package handlers

import (
	"net/http"

	"vehicle-inventory-frontend/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	carroSvc       *services.CarroService
	modeloSvc      *services.ModeloService
	imagemSvc      *services.ImagemService
	media          MediaSource
	maxUploadBytes int64
}

func New(
	carroSvc *services.CarroService,
	modeloSvc *services.ModeloService,
	imagemSvc *services.ImagemService,
	media MediaSource,
	maxUploadBytes int64,
) *Handler {
	return &Handler{
		carroSvc:       carroSvc,
		modeloSvc:      modeloSvc,
		imagemSvc:      imagemSvc,
		media:          media,
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterRoutes installs the route table. Every view renders inside the
// same layout; unknown paths get the not-found view.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)

	// Carros
	r.GET("/carros", h.ListCarros)
	r.GET("/carros/novo", h.NewCarro)
	r.POST("/carros/novo", h.limitBody(), h.CreateCarro)
	r.GET("/carros/:id", h.ShowCarro)
	r.POST("/carros/:id", h.limitBody(), h.UpdateCarro)
	r.GET("/carros/:id/excluir", h.ConfirmDeleteCarro)
	r.POST("/carros/:id/excluir", h.DeleteCarro)

	// Imagens (nested under carro)
	r.POST("/carros/:id/imagens/ordem", h.ReorderImagens)
	r.GET("/carros/:id/imagens/:imagemId/excluir", h.ConfirmDeleteImagem)
	r.POST("/carros/:id/imagens/:imagemId/excluir", h.DeleteImagem)
	r.POST("/carros/:id/imagens/:imagemId/principal", h.SetImagemPrincipal)
	r.POST("/carros/:id/imagens/:imagemId/mover", h.MoveImagem)

	// Modelos
	r.GET("/modelos", h.ListModelos)
	r.GET("/modelos/novo", h.NewModelo)
	r.POST("/modelos/novo", h.CreateModelo)
	r.GET("/modelos/:id", h.EditModelo)
	r.POST("/modelos/:id", h.UpdateModelo)
	r.GET("/modelos/:id/excluir", h.ConfirmDeleteModelo)
	r.POST("/modelos/:id/excluir", h.DeleteModelo)

	if h.media != nil {
		r.GET("/media/*filepath", h.Media)
	}

	r.NoRoute(h.NotFound)
}

func (h *Handler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/carros")
}

// limitBody caps request bodies that may carry uploads.
func (h *Handler) limitBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.maxUploadBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
		}
		c.Next()
	}
}
