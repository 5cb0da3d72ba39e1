package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VetCareCL/vetcare-api/internal/httperr"
	"github.com/VetCareCL/vetcare-api/internal/httpresp"
	"github.com/VetCareCL/vetcare-api/internal/models"
)

type VeterinarianHandler struct {
	db *gorm.DB
}

func NewVeterinarianHandler(db *gorm.DB) *VeterinarianHandler {
	return &VeterinarianHandler{db: db}
}

func (h *VeterinarianHandler) List(c *gin.Context) {
	var vets []models.Veterinarian
	if err := h.db.
		Where("is_active = ?", true).
		Order("first_name ASC, last_name ASC").
		Find(&vets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_veterinarians", "Error al listar veterinarios.")
		return
	}

	httpresp.List(c, vets)
}

func (h *VeterinarianHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var vet models.Veterinarian
	if err := h.db.
		Where("id = ? AND is_active = ?", id, true).
		First(&vet).Error; err != nil {
		httperr.NotFound(c, "veterinarian_not_found", "Veterinario no encontrado.")
		return
	}

	httpresp.OK(c, vet)
}
