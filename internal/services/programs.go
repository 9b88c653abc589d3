package services

import (
	"errors"
	"fmt"
	"time"
	"valhalla/internal/db"
	"valhalla/internal/models"
	"valhalla/internal/utils"

	"gorm.io/gorm"
)

const programsCacheKey = "programs:grid"

var ErrProgramNotFound = errors.New("program not found")

// ListPrograms returns the program grid in display order. The grid only
// changes on deploy, so it is cached for ten minutes.
func ListPrograms() ([]models.Program, error) {
	return utils.Remember(programsCacheKey, 10*time.Minute, func() ([]models.Program, error) {
		var programs []models.Program
		if err := db.DB.Order("position ASC, id ASC").Find(&programs).Error; err != nil {
			return nil, fmt.Errorf("list programs: %w", err)
		}
		return programs, nil
	})
}

func FindProgram(slug string) (*models.Program, error) {
	var program models.Program
	if err := db.DB.Where("slug = ?", slug).First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return &program, nil
}
