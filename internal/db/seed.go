package db

import (
	"gorm.io/gorm"

	"github.com/VetCareCL/vetcare-api/internal/models"
)

// Seed insere o catálogo de exemplo (veterinários e serviços) para
// ambientes locais. Idempotente: não insere nada se já houver dados.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Veterinarian{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	vets := []models.Veterinarian{
		{
			FirstName:       "Dr. Carlos",
			LastName:        "Rodríguez",
			Email:           "carlos.rodriguez@veterinaria.com",
			Phone:           "+57 301 234 5678",
			LicenseNumber:   "VET-001",
			Specialization:  "Medicina General",
			YearsExperience: 8,
			Education:       "Universidad Nacional - Medicina Veterinaria",
			Bio:             "Especialista en medicina general con 8 años de experiencia en servicios a domicilio",
			IsActive:        true,
		},
		{
			FirstName:       "Dra. Ana",
			LastName:        "Martínez",
			Email:           "ana.martinez@veterinaria.com",
			Phone:           "+57 302 345 6789",
			LicenseNumber:   "VET-002",
			Specialization:  "Cirugía",
			YearsExperience: 10,
			Education:       "Universidad Javeriana - Medicina Veterinaria, Especialización en Cirugía",
			Bio:             "Cirujana veterinaria especializada en procedimientos menores y mayores",
			IsActive:        true,
		},
	}

	services := []models.Service{
		{Name: "Consulta General a Domicilio", Description: "Examen físico completo, diagnóstico básico y recomendaciones", Price: 80000, DurationMinutes: 45, Category: "Consulta", Requirements: "Tener la mascota en ayunas de 4 horas", IsHomeService: true, IsActive: true},
		{Name: "Vacunación a Domicilio", Description: "Aplicación de vacunas según esquema de vacunación", Price: 50000, DurationMinutes: 30, Category: "Prevención", Requirements: "Mascota debe estar desparasitada", IsHomeService: true, IsActive: true},
		{Name: "Desparasitación", Description: "Aplicación de tratamiento antiparasitario interno y externo", Price: 35000, DurationMinutes: 20, Category: "Prevención", Requirements: "Peso actualizado de la mascota", IsHomeService: true, IsActive: true},
		{Name: "Cirugía Menor a Domicilio", Description: "Procedimientos quirúrgicos menores (sutura, extracción, etc.)", Price: 250000, DurationMinutes: 90, Category: "Cirugía", Requirements: "Espacio adecuado y ayuno de 12 horas", IsHomeService: true, IsActive: true},
		{Name: "Exámenes de Laboratorio", Description: "Toma de muestras para análisis (sangre, orina, heces)", Price: 120000, DurationMinutes: 30, Category: "Diagnóstico", Requirements: "Ayuno según tipo de examen", IsHomeService: true, IsActive: true},
		{Name: "Consulta de Emergencia", Description: "Atención veterinaria de urgencia las 24 horas", Price: 150000, DurationMinutes: 60, Category: "Emergencia", Requirements: "Disponible 24/7 con recargo nocturno", IsHomeService: true, IsActive: true},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vets).Error; err != nil {
			return err
		}
		return tx.Create(&services).Error
	})
}
