package repository

import (
	"gorm.io/gorm"

	"marmitaria/internal/models"
)

// ConfigRepository reads and writes the singleton OperatingConfig row.
// Get returns gorm.ErrRecordNotFound before the first write.
type ConfigRepository interface {
	Get() (*models.OperatingConfig, error)
	Save(cfg *models.OperatingConfig) error
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) Get() (*models.OperatingConfig, error) {
	var cfg models.OperatingConfig
	err := r.db.Order("id asc").First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *configRepository) Save(cfg *models.OperatingConfig) error {
	return r.db.Save(cfg).Error
}
