package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marmitaria/internal/models"
)

// MenuRepository covers the Menu aggregate: the menu row plus its items
// and size tiers.
type MenuRepository interface {
	GetActive() (*models.Menu, error)
	GetActiveForOrdering() (*models.Menu, error)
	GetByID(id string) (*models.Menu, error)
	UpdatePrice(menuID string, price decimal.Decimal) error

	CreateItem(item *models.MenuItem) error
	GetItemByID(id string) (*models.MenuItem, error)
	UpdateItem(item *models.MenuItem) error
	DeleteItem(id string) error

	CreateSize(size *models.SizeOption) error
	GetSizeByID(id string) (*models.SizeOption, error)
	UpdateSize(size *models.SizeOption) error
	DeleteSize(id string) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

// GetActive loads the newest active menu with every item and size,
// including unavailable ones, for the admin screens.
func (r *menuRepository) GetActive() (*models.Menu, error) {
	var menu models.Menu
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("category asc, name asc")
		}).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("price asc")
		}).
		Where("active = ?", true).
		Order("created_at desc").
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// GetActiveForOrdering loads the customer view: only available items and
// active sizes.
func (r *menuRepository) GetActiveForOrdering() (*models.Menu, error) {
	var menu models.Menu
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("available = ?", true).Order("category asc, name asc")
		}).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = ?", true).Order("price asc")
		}).
		Where("active = ?", true).
		Order("created_at desc").
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) GetByID(id string) (*models.Menu, error) {
	var menu models.Menu
	err := r.db.Preload("Items").Preload("Sizes").First(&menu, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) UpdatePrice(menuID string, price decimal.Decimal) error {
	return r.db.Model(&models.Menu{}).Where("id = ?", menuID).Update("price", price).Error
}

func (r *menuRepository) CreateItem(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) GetItemByID(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) UpdateItem(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuRepository) DeleteItem(id string) error {
	return r.db.Delete(&models.MenuItem{}, "id = ?", id).Error
}

func (r *menuRepository) CreateSize(size *models.SizeOption) error {
	return r.db.Create(size).Error
}

func (r *menuRepository) GetSizeByID(id string) (*models.SizeOption, error) {
	var size models.SizeOption
	err := r.db.First(&size, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *menuRepository) UpdateSize(size *models.SizeOption) error {
	return r.db.Save(size).Error
}

func (r *menuRepository) DeleteSize(id string) error {
	return r.db.Delete(&models.SizeOption{}, "id = ?", id).Error
}
