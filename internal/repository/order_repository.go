package repository

import (
	"time"

	"gorm.io/gorm"

	"marmitaria/internal/models"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByNumber(number uint) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetByStatus(status models.OrderStatus) ([]models.Order, error)
	GetByDateRange(start, end time.Time) ([]models.Order, error)
	Update(order *models.Order) error
	UpdateStatus(number uint, status models.OrderStatus) error
	SetWhatsAppSent(number uint, sent bool) error
	CountByDeliveryPoint(pointID string) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByNumber(number uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("DeliveryPoint").First(&order, "number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("DeliveryPoint").Order("number desc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("DeliveryPoint").Where("status = ?", status).Order("number asc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByDateRange(start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("DeliveryPoint").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("number asc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) UpdateStatus(number uint, status models.OrderStatus) error {
	return r.db.Model(&models.Order{}).Where("number = ?", number).Update("status", status).Error
}

func (r *orderRepository) SetWhatsAppSent(number uint, sent bool) error {
	return r.db.Model(&models.Order{}).Where("number = ?", number).Update("whats_app_sent", sent).Error
}

func (r *orderRepository) CountByDeliveryPoint(pointID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("delivery_point_id = ?", pointID).Count(&count).Error
	return count, err
}
