package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VetCareCL/vetcare-api/internal/httperr"
	"github.com/VetCareCL/vetcare-api/internal/httpresp"
	"github.com/VetCareCL/vetcare-api/internal/middleware"
	"github.com/VetCareCL/vetcare-api/internal/models"
)

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

type CreatePetRequest struct {
	Name               string  `json:"name" binding:"required"`
	Species            string  `json:"species" binding:"required"`
	Breed              string  `json:"breed"`
	Gender             string  `json:"gender"`
	DateOfBirth        string  `json:"date_of_birth"`
	Weight             float64 `json:"weight"`
	Color              string  `json:"color"`
	MicrochipNumber    string  `json:"microchip_number"`
	MedicalHistory     string  `json:"medical_history"`
	Allergies          string  `json:"allergies"`
	CurrentMedications string  `json:"current_medications"`
}

func (h *PetHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var pets []models.Pet
	if err := h.db.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Error al listar mascotas.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	pet := models.Pet{
		UserID:             userID,
		Name:               req.Name,
		Species:            req.Species,
		Breed:              req.Breed,
		Gender:             req.Gender,
		DateOfBirth:        req.DateOfBirth,
		Weight:             req.Weight,
		Color:              req.Color,
		MicrochipNumber:    req.MicrochipNumber,
		MedicalHistory:     req.MedicalHistory,
		Allergies:          req.Allergies,
		CurrentMedications: req.CurrentMedications,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Error al registrar la mascota.")
		return
	}

	c.JSON(http.StatusCreated, pet)
}

func (h *PetHandler) GetByID(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	// filtro composto: mascota de outro usuário responde como inexistente
	var pet models.Pet
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&pet).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Mascota no encontrada.")
		return
	}

	httpresp.OK(c, pet)
}
