package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marmitaria/internal/models"
	"marmitaria/pkg/whatsapp"
)

// In-memory repository fakes. They mimic the behavior the services rely
// on: gorm.ErrRecordNotFound on misses and sequential order numbers.

type memOrderRepo struct {
	orders    []*models.Order
	createErr error

	lastRangeStart time.Time
	lastRangeEnd   time.Time
}

func (r *memOrderRepo) Create(order *models.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	order.Number = uint(len(r.orders) + 1)
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	cp := *order
	r.orders = append(r.orders, &cp)
	return nil
}

func (r *memOrderRepo) GetByNumber(number uint) (*models.Order, error) {
	for _, o := range r.orders {
		if o.Number == number {
			cp := *o
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memOrderRepo) GetAll() ([]models.Order, error) {
	out := make([]models.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, *r.orders[i])
	}
	return out, nil
}

func (r *memOrderRepo) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) GetByDateRange(start, end time.Time) ([]models.Order, error) {
	r.lastRangeStart, r.lastRangeEnd = start, end
	var out []models.Order
	for _, o := range r.orders {
		if !o.CreatedAt.Before(start) && o.CreatedAt.Before(end) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) Update(order *models.Order) error {
	for i, o := range r.orders {
		if o.Number == order.Number {
			cp := *order
			r.orders[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memOrderRepo) UpdateStatus(number uint, status models.OrderStatus) error {
	for _, o := range r.orders {
		if o.Number == number {
			o.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memOrderRepo) SetWhatsAppSent(number uint, sent bool) error {
	for _, o := range r.orders {
		if o.Number == number {
			o.WhatsAppSent = sent
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memOrderRepo) CountByDeliveryPoint(pointID string) (int64, error) {
	var count int64
	for _, o := range r.orders {
		if o.DeliveryPointID == pointID {
			count++
		}
	}
	return count, nil
}

type memPointRepo struct {
	points []*models.DeliveryPoint
}

func (r *memPointRepo) Create(point *models.DeliveryPoint) error {
	if point.ID == "" {
		point.ID = fmt.Sprintf("point-%d", len(r.points)+1)
	}
	cp := *point
	r.points = append(r.points, &cp)
	return nil
}

func (r *memPointRepo) GetByID(id string) (*models.DeliveryPoint, error) {
	for _, p := range r.points {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memPointRepo) GetActive() ([]models.DeliveryPoint, error) {
	var out []models.DeliveryPoint
	for _, p := range r.points {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPointRepo) GetAll() ([]models.DeliveryPoint, error) {
	out := make([]models.DeliveryPoint, 0, len(r.points))
	for _, p := range r.points {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memPointRepo) Update(point *models.DeliveryPoint) error {
	for i, p := range r.points {
		if p.ID == point.ID {
			cp := *point
			r.points[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memPointRepo) Delete(id string) error {
	for i, p := range r.points {
		if p.ID == id {
			r.points = append(r.points[:i], r.points[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type memConfigRepo struct {
	cfg    *models.OperatingConfig
	getErr error
}

func (r *memConfigRepo) Get() (*models.OperatingConfig, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.cfg == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r.cfg
	return &cp, nil
}

func (r *memConfigRepo) Save(cfg *models.OperatingConfig) error {
	if cfg.ID == 0 {
		cfg.ID = 1
	}
	cp := *cfg
	r.cfg = &cp
	return nil
}

type memMenuRepo struct {
	menu *models.Menu
}

func (r *memMenuRepo) GetActive() (*models.Menu, error) {
	if r.menu == nil || !r.menu.Active {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r.menu
	return &cp, nil
}

func (r *memMenuRepo) GetActiveForOrdering() (*models.Menu, error) {
	if r.menu == nil || !r.menu.Active {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r.menu
	cp.Items = nil
	for _, item := range r.menu.Items {
		if item.Available {
			cp.Items = append(cp.Items, item)
		}
	}
	cp.Sizes = nil
	for _, size := range r.menu.Sizes {
		if size.Active {
			cp.Sizes = append(cp.Sizes, size)
		}
	}
	return &cp, nil
}

func (r *memMenuRepo) GetByID(id string) (*models.Menu, error) {
	if r.menu == nil || r.menu.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r.menu
	return &cp, nil
}

func (r *memMenuRepo) UpdatePrice(menuID string, price decimal.Decimal) error {
	if r.menu == nil || r.menu.ID != menuID {
		return gorm.ErrRecordNotFound
	}
	r.menu.Price = price
	return nil
}

func (r *memMenuRepo) CreateItem(item *models.MenuItem) error {
	if item.ID == "" {
		item.ID = fmt.Sprintf("item-%d", len(r.menu.Items)+1)
	}
	r.menu.Items = append(r.menu.Items, *item)
	return nil
}

func (r *memMenuRepo) GetItemByID(id string) (*models.MenuItem, error) {
	for _, item := range r.menu.Items {
		if item.ID == id {
			cp := item
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memMenuRepo) UpdateItem(item *models.MenuItem) error {
	for i := range r.menu.Items {
		if r.menu.Items[i].ID == item.ID {
			r.menu.Items[i] = *item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memMenuRepo) DeleteItem(id string) error {
	for i := range r.menu.Items {
		if r.menu.Items[i].ID == id {
			r.menu.Items = append(r.menu.Items[:i], r.menu.Items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memMenuRepo) CreateSize(size *models.SizeOption) error {
	if size.ID == "" {
		size.ID = fmt.Sprintf("size-%d", len(r.menu.Sizes)+1)
	}
	r.menu.Sizes = append(r.menu.Sizes, *size)
	return nil
}

func (r *memMenuRepo) GetSizeByID(id string) (*models.SizeOption, error) {
	for _, size := range r.menu.Sizes {
		if size.ID == id {
			cp := size
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memMenuRepo) UpdateSize(size *models.SizeOption) error {
	for i := range r.menu.Sizes {
		if r.menu.Sizes[i].ID == size.ID {
			r.menu.Sizes[i] = *size
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memMenuRepo) DeleteSize(id string) error {
	for i := range r.menu.Sizes {
		if r.menu.Sizes[i].ID == id {
			r.menu.Sizes = append(r.menu.Sizes[:i], r.menu.Sizes[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// memCache records traffic so tests can assert hit, fill and
// invalidation behavior.
type memCache struct {
	menu          *models.Menu
	sets          int
	invalidations int
}

func (c *memCache) GetActiveMenu() (*models.Menu, error) {
	if c.menu == nil {
		return nil, errors.New("cache miss")
	}
	cp := *c.menu
	return &cp, nil
}

func (c *memCache) SetActiveMenu(menu *models.Menu, ttl time.Duration) error {
	cp := *menu
	c.menu = &cp
	c.sets++
	return nil
}

func (c *memCache) InvalidateActiveMenu() error {
	c.menu = nil
	c.invalidations++
	return nil
}

// stubSender captures outbound messages and answers with a fixed result.
type stubSender struct {
	fail      bool
	failFirst bool
	numbers   []string
	texts     []string
}

func (s *stubSender) SendText(number, text string) whatsapp.SendResult {
	s.numbers = append(s.numbers, number)
	s.texts = append(s.texts, text)
	if s.fail || (s.failFirst && len(s.numbers) == 1) {
		return whatsapp.SendResult{OK: false, Error: "stubbed failure"}
	}
	return whatsapp.SendResult{OK: true}
}
