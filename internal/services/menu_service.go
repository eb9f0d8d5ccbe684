package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marmitaria/internal/models"
	"marmitaria/internal/repository"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
	ErrSizeNotFound = errors.New("size option not found")
)

// MenuCache is the redis-backed cache of the customer menu view.
// Satisfied by *redis.Client; a nil cache disables caching.
type MenuCache interface {
	GetActiveMenu() (*models.Menu, error)
	SetActiveMenu(menu *models.Menu, ttl time.Duration) error
	InvalidateActiveMenu() error
}

type MenuService interface {
	GetActiveMenu() (*models.Menu, error)
	GetActiveMenuAdmin() (*models.Menu, error)

	CreateItem(name string, category models.Category, maxSelections int) (*models.MenuItem, error)
	UpdateItem(id, name string, available bool, maxSelections int) (*models.MenuItem, error)
	ToggleItemAvailable(id string) (*models.MenuItem, error)
	DeleteItem(id string) error

	CreateSize(name string, price decimal.Decimal) (*models.SizeOption, error)
	UpdateSize(id, name string, price decimal.Decimal, active bool) (*models.SizeOption, error)
	DeleteSize(id string) error

	UpdateLegacyPrice(price decimal.Decimal) error
}

type menuService struct {
	menuRepo repository.MenuRepository
	cache    MenuCache
	cacheTTL time.Duration
}

func NewMenuService(menuRepo repository.MenuRepository, cache MenuCache, cacheTTL time.Duration) MenuService {
	return &menuService{menuRepo: menuRepo, cache: cache, cacheTTL: cacheTTL}
}

// GetActiveMenu returns the customer view of the active menu (available
// items, active sizes), served from cache when possible. Customers may
// see a snapshot up to the cache TTL behind an admin edit on top of the
// accepted page-load staleness.
func (s *menuService) GetActiveMenu() (*models.Menu, error) {
	if s.cache != nil {
		if menu, err := s.cache.GetActiveMenu(); err == nil {
			return menu, nil
		}
	}

	menu, err := s.menuRepo.GetActiveForOrdering()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveMenu
		}
		return nil, fmt.Errorf("failed to load active menu: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetActiveMenu(menu, s.cacheTTL); err != nil {
			log.Printf("menu: failed to cache active menu: %v", err)
		}
	}
	return menu, nil
}

// GetActiveMenuAdmin returns the full aggregate, unavailable items and
// inactive sizes included, always straight from the store.
func (s *menuService) GetActiveMenuAdmin() (*models.Menu, error) {
	menu, err := s.menuRepo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveMenu
		}
		return nil, fmt.Errorf("failed to load active menu: %w", err)
	}
	return menu, nil
}

func (s *menuService) CreateItem(name string, category models.Category, maxSelections int) (*models.MenuItem, error) {
	menu, err := s.GetActiveMenuAdmin()
	if err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		MenuID:        menu.ID,
		Name:          name,
		Category:      category,
		Available:     true,
		MaxSelections: maxSelections,
	}
	if err := s.menuRepo.CreateItem(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	s.invalidate()
	return item, nil
}

func (s *menuService) UpdateItem(id, name string, available bool, maxSelections int) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item.Name = name
	item.Available = available
	item.MaxSelections = maxSelections
	if err := s.menuRepo.UpdateItem(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	s.invalidate()
	return item, nil
}

func (s *menuService) ToggleItemAvailable(id string) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item.Available = !item.Available
	if err := s.menuRepo.UpdateItem(item); err != nil {
		return nil, fmt.Errorf("failed to toggle item: %w", err)
	}
	s.invalidate()
	return item, nil
}

func (s *menuService) DeleteItem(id string) error {
	if _, err := s.menuRepo.GetItemByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	if err := s.menuRepo.DeleteItem(id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	s.invalidate()
	return nil
}

func (s *menuService) CreateSize(name string, price decimal.Decimal) (*models.SizeOption, error) {
	menu, err := s.GetActiveMenuAdmin()
	if err != nil {
		return nil, err
	}

	size := &models.SizeOption{
		MenuID: menu.ID,
		Name:   name,
		Price:  price,
		Active: true,
	}
	if err := s.menuRepo.CreateSize(size); err != nil {
		return nil, fmt.Errorf("failed to create size: %w", err)
	}
	s.invalidate()
	return size, nil
}

func (s *menuService) UpdateSize(id, name string, price decimal.Decimal, active bool) (*models.SizeOption, error) {
	size, err := s.menuRepo.GetSizeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSizeNotFound
		}
		return nil, err
	}

	size.Name = name
	size.Price = price
	size.Active = active
	if err := s.menuRepo.UpdateSize(size); err != nil {
		return nil, fmt.Errorf("failed to update size: %w", err)
	}
	s.invalidate()
	return size, nil
}

func (s *menuService) DeleteSize(id string) error {
	if _, err := s.menuRepo.GetSizeByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSizeNotFound
		}
		return err
	}
	if err := s.menuRepo.DeleteSize(id); err != nil {
		return fmt.Errorf("failed to delete size: %w", err)
	}
	s.invalidate()
	return nil
}

// UpdateLegacyPrice sets the flat menu price used when no size tiers
// are active.
func (s *menuService) UpdateLegacyPrice(price decimal.Decimal) error {
	menu, err := s.GetActiveMenuAdmin()
	if err != nil {
		return err
	}
	if err := s.menuRepo.UpdatePrice(menu.ID, price); err != nil {
		return fmt.Errorf("failed to update menu price: %w", err)
	}
	s.invalidate()
	return nil
}

func (s *menuService) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateActiveMenu(); err != nil {
		log.Printf("menu: failed to invalidate cache: %v", err)
	}
}
