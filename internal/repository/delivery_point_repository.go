package repository

import (
	"gorm.io/gorm"

	"marmitaria/internal/models"
)

type DeliveryPointRepository interface {
	Create(point *models.DeliveryPoint) error
	GetByID(id string) (*models.DeliveryPoint, error)
	GetActive() ([]models.DeliveryPoint, error)
	GetAll() ([]models.DeliveryPoint, error)
	Update(point *models.DeliveryPoint) error
	Delete(id string) error
}

type deliveryPointRepository struct {
	db *gorm.DB
}

func NewDeliveryPointRepository(db *gorm.DB) DeliveryPointRepository {
	return &deliveryPointRepository{db: db}
}

func (r *deliveryPointRepository) Create(point *models.DeliveryPoint) error {
	return r.db.Create(point).Error
}

func (r *deliveryPointRepository) GetByID(id string) (*models.DeliveryPoint, error) {
	var point models.DeliveryPoint
	err := r.db.First(&point, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func (r *deliveryPointRepository) GetActive() ([]models.DeliveryPoint, error) {
	var points []models.DeliveryPoint
	err := r.db.Where("active = ?", true).Order("name asc").Find(&points).Error
	return points, err
}

func (r *deliveryPointRepository) GetAll() ([]models.DeliveryPoint, error) {
	var points []models.DeliveryPoint
	err := r.db.Order("name asc").Find(&points).Error
	return points, err
}

func (r *deliveryPointRepository) Update(point *models.DeliveryPoint) error {
	return r.db.Save(point).Error
}

func (r *deliveryPointRepository) Delete(id string) error {
	return r.db.Delete(&models.DeliveryPoint{}, "id = ?", id).Error
}
