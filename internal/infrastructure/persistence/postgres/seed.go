package postgres

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
)

// seedStatuses é o conjunto fechado de status do ciclo de vida.
// O código é o identificador estável; o nome é só exibição.
var seedStatuses = []PropertyStatusModel{
	{Code: entities.StatusAvailable, Nom: "Disponible", Couleur: "#22c55e", IsTerminal: false},
	{Code: entities.StatusReserved, Nom: "Réservé", Couleur: "#eab308", IsTerminal: false},
	{Code: entities.StatusSold, Nom: "Vendu", Couleur: "#ef4444", IsTerminal: true},
	{Code: entities.StatusSuspended, Nom: "Suspendu", Couleur: "#6b7280", IsTerminal: true},
}

var seedTypes = []PropertyTypeModel{
	{Nom: "Villa", Description: "Maison individuelle avec terrain"},
	{Nom: "Appartement", Description: "Logement dans un immeuble collectif"},
	{Nom: "Studio", Description: "Logement d'une pièce"},
	{Nom: "Terrain", Description: "Terrain nu à bâtir"},
	{Nom: "Local commercial", Description: "Local à usage commercial ou de bureau"},
}

// Seed grava os dados de referência. Idempotente: reexecutar não duplica
// nem recria linhas já existentes (o código do status é a chave).
func Seed(db *gorm.DB) error {
	for _, status := range seedStatuses {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).Create(&status).Error
		if err != nil {
			return err
		}
	}

	var typeCount int64
	if err := db.Model(&PropertyTypeModel{}).Count(&typeCount).Error; err != nil {
		return err
	}
	if typeCount == 0 {
		if err := db.Create(&seedTypes).Error; err != nil {
			return err
		}
	}

	return nil
}
