package handlers

import (
	"fmt"
	"strconv"

	"vehicle-inventory-frontend/internal/adapters/primary/http/dto"
	"vehicle-inventory-frontend/internal/core/domain"
	"vehicle-inventory-frontend/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func carroPath(id int64) string {
	return "/carros/" + strconv.FormatInt(id, 10)
}

func imageIDs(c *gin.Context) (int64, int64, error) {
	carroID, err := parseID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	imagemID, err := parseID(c, "imagemId")
	if err != nil {
		return 0, 0, err
	}
	return carroID, imagemID, nil
}

func (h *Handler) ConfirmDeleteImagem(c *gin.Context) {
	carro, ok := h.loadCarro(c)
	if !ok {
		return
	}
	imagemID, err := parseID(c, "imagemId")
	if err != nil {
		mapDomainError(c, activeCarros, err)
		return
	}
	if _, found := carro.Imagem(imagemID); !found {
		mapDomainError(c, activeCarros, domain.ErrImagemNotFound)
		return
	}

	renderConfirm(c, activeCarros,
		fmt.Sprintf("Tem certeza que deseja excluir a imagem #%d do carro #%d?", imagemID, carro.ID),
		fmt.Sprintf("/carros/%d/imagens/%d/excluir", carro.ID, imagemID),
		carroPath(carro.ID),
	)
}

func (h *Handler) DeleteImagem(c *gin.Context) {
	carroID, imagemID, err := imageIDs(c)
	if err != nil {
		mapDomainError(c, activeCarros, err)
		return
	}
	if !confirmed(c) {
		redirectNotice(c, carroPath(carroID), "Exclusão cancelada.")
		return
	}

	fields := log.Fields{"carro_id": carroID, "imagem_id": imagemID}
	if err := h.imagemSvc.Delete(c.Request.Context(), carroID, imagemID); err != nil {
		log.WithError(err).WithFields(fields).Error("Failed to delete imagem")
		redirectError(c, carroPath(carroID), err)
		return
	}

	log.WithFields(fields).Info("Imagem deleted")
	redirectNotice(c, carroPath(carroID), "Imagem excluída com sucesso!")
}

func (h *Handler) SetImagemPrincipal(c *gin.Context) {
	carroID, imagemID, err := imageIDs(c)
	if err != nil {
		mapDomainError(c, activeCarros, err)
		return
	}

	changed, err := h.imagemSvc.SetPrincipal(c.Request.Context(), carroID, imagemID)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"carro_id": carroID, "imagem_id": imagemID}).Error("Failed to set imagem principal")
		redirectError(c, carroPath(carroID), err)
		return
	}
	if !changed {
		redirectNotice(c, carroPath(carroID), "Esta imagem já é a principal.")
		return
	}
	redirectNotice(c, carroPath(carroID), "Imagem principal atualizada.")
}

func (h *Handler) MoveImagem(c *gin.Context) {
	carroID, imagemID, err := imageIDs(c)
	if err != nil {
		mapDomainError(c, activeCarros, err)
		return
	}

	dir, err := services.ParseDirection(c.PostForm("direcao"))
	if err != nil {
		redirectError(c, carroPath(carroID), err)
		return
	}

	moved, err := h.imagemSvc.Move(c.Request.Context(), carroID, imagemID, dir)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"carro_id": carroID, "imagem_id": imagemID}).Error("Failed to move imagem")
		redirectError(c, carroPath(carroID), err)
		return
	}
	if !moved {
		redirectNotice(c, carroPath(carroID), "A imagem já está na extremidade.")
		return
	}
	redirectNotice(c, carroPath(carroID), "Ordem das imagens atualizada.")
}

func (h *Handler) ReorderImagens(c *gin.Context) {
	carroID, err := parseID(c, "id")
	if err != nil {
		mapDomainError(c, activeCarros, err)
		return
	}

	ids, err := dto.ParseImageOrder(c.PostFormArray("imagens"), c.PostForm("ordem"))
	if err != nil {
		redirectError(c, carroPath(carroID), err)
		return
	}

	if err := h.imagemSvc.Reorder(c.Request.Context(), carroID, ids); err != nil {
		log.WithError(err).WithField("carro_id", carroID).Error("Failed to reorder imagens")
		redirectError(c, carroPath(carroID), err)
		return
	}
	redirectNotice(c, carroPath(carroID), "Ordem das imagens atualizada.")
}
