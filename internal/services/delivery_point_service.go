package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"marmitaria/internal/models"
	"marmitaria/internal/repository"
)

var (
	ErrPointNotFound  = errors.New("delivery point not found")
	ErrPointHasOrders = errors.New("delivery point has orders and cannot be deleted")
)

type DeliveryPointService interface {
	ListActive() ([]models.DeliveryPoint, error)
	ListAll() ([]models.DeliveryPoint, error)
	Create(name, timeLabel string, active bool) (*models.DeliveryPoint, error)
	Update(id, name, timeLabel string, active bool) (*models.DeliveryPoint, error)
	ToggleActive(id string) (*models.DeliveryPoint, error)
	Delete(id string) error
}

type deliveryPointService struct {
	pointRepo repository.DeliveryPointRepository
	orderRepo repository.OrderRepository
}

func NewDeliveryPointService(pointRepo repository.DeliveryPointRepository, orderRepo repository.OrderRepository) DeliveryPointService {
	return &deliveryPointService{pointRepo: pointRepo, orderRepo: orderRepo}
}

func (s *deliveryPointService) ListActive() ([]models.DeliveryPoint, error) {
	return s.pointRepo.GetActive()
}

func (s *deliveryPointService) ListAll() ([]models.DeliveryPoint, error) {
	return s.pointRepo.GetAll()
}

func (s *deliveryPointService) Create(name, timeLabel string, active bool) (*models.DeliveryPoint, error) {
	point := &models.DeliveryPoint{Name: name, TimeLabel: timeLabel, Active: active}
	if err := s.pointRepo.Create(point); err != nil {
		return nil, fmt.Errorf("failed to create delivery point: %w", err)
	}
	return point, nil
}

func (s *deliveryPointService) Update(id, name, timeLabel string, active bool) (*models.DeliveryPoint, error) {
	point, err := s.get(id)
	if err != nil {
		return nil, err
	}

	point.Name = name
	point.TimeLabel = timeLabel
	point.Active = active
	if err := s.pointRepo.Update(point); err != nil {
		return nil, fmt.Errorf("failed to update delivery point: %w", err)
	}
	return point, nil
}

func (s *deliveryPointService) ToggleActive(id string) (*models.DeliveryPoint, error) {
	point, err := s.get(id)
	if err != nil {
		return nil, err
	}

	point.Active = !point.Active
	if err := s.pointRepo.Update(point); err != nil {
		return nil, fmt.Errorf("failed to toggle delivery point: %w", err)
	}
	return point, nil
}

// Delete refuses to remove a point that orders reference; history is
// permanent, so such a point can only be deactivated.
func (s *deliveryPointService) Delete(id string) error {
	if _, err := s.get(id); err != nil {
		return err
	}

	count, err := s.orderRepo.CountByDeliveryPoint(id)
	if err != nil {
		return fmt.Errorf("failed to count orders for delivery point: %w", err)
	}
	if count > 0 {
		return ErrPointHasOrders
	}
	return s.pointRepo.Delete(id)
}

func (s *deliveryPointService) get(id string) (*models.DeliveryPoint, error) {
	point, err := s.pointRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPointNotFound
		}
		return nil, err
	}
	return point, nil
}
