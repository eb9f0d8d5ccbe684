package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marmitaria/internal/models"
	"marmitaria/internal/pricing"
	"marmitaria/internal/repository"
	"marmitaria/internal/schedule"
)

var (
	ErrInvalidDeliveryPoint  = errors.New("delivery point not found or inactive")
	ErrOutsideOperatingHours = errors.New("ordering is closed right now")
	ErrNoActiveMenu          = errors.New("no active menu")
	ErrNoItemsSelected       = errors.New("no valid items selected")
	ErrTotalMismatch         = errors.New("order total does not match current menu pricing")
	ErrInvalidStatus         = errors.New("unknown order status")
)

// SubmitOrderInput carries everything the customer form sends. Total is
// the client-computed value; the workflow re-derives the price from the
// live menu and rejects a mismatch.
type SubmitOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	Quantity        int
	SizeID          *string
	ItemIDs         []string
	RemovedSides    []string
	Notes           string
	Total           decimal.Decimal
	DeliveryPointID string
}

type OrderService interface {
	SubmitOrder(input SubmitOrderInput) (*models.Order, error)
	Quote(sizeID *string, itemIDs []string, quantity int) (*pricing.Breakdown, error)
	GetOrderByNumber(number uint) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error)
	GetTodaysOrders() ([]models.Order, error)
	UpdateStatus(number uint, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orderRepo  repository.OrderRepository
	pointRepo  repository.DeliveryPointRepository
	configRepo repository.ConfigRepository
	menus      MenuService
	notifier   NotificationService
	now        func() time.Time
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	pointRepo repository.DeliveryPointRepository,
	configRepo repository.ConfigRepository,
	menus MenuService,
	notifier NotificationService,
) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		pointRepo:  pointRepo,
		configRepo: configRepo,
		menus:      menus,
		notifier:   notifier,
		now:        time.Now,
	}
}

// SubmitOrder runs the full workflow: re-validate the delivery point,
// re-check the hours gate, price the order against the live menu,
// persist it, then notify. Notification failure never fails the order;
// the caller reads the outcome off the returned order's WhatsAppSent
// flag.
func (s *orderService) SubmitOrder(input SubmitOrderInput) (*models.Order, error) {
	point, err := s.pointRepo.GetByID(input.DeliveryPointID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidDeliveryPoint
		}
		return nil, fmt.Errorf("failed to load delivery point: %w", err)
	}
	if !point.Active {
		return nil, ErrInvalidDeliveryPoint
	}

	opening, closing, err := s.operatingWindow()
	if err != nil {
		return nil, err
	}
	if !schedule.IsOrderingOpen(opening, closing, s.now()) {
		return nil, ErrOutsideOperatingHours
	}

	menu, err := s.menus.GetActiveMenu()
	if err != nil {
		return nil, err
	}

	quantity := clampQuantity(input.Quantity)

	base, sizeID, sizeName := resolveBasePrice(menu, input.SizeID)
	selected := resolveItems(menu, input.ItemIDs)
	if len(selected) == 0 {
		return nil, ErrNoItemsSelected
	}

	breakdown := pricing.ComputeTotal(base, selected, quantity)
	total := breakdown.Total.Round(2)
	if !total.Equal(input.Total.Round(2)) {
		return nil, ErrTotalMismatch
	}

	var itemNames, sideNames []string
	for _, item := range selected {
		itemNames = append(itemNames, item.Name)
		if item.Category == models.CategoryAccompaniment {
			sideNames = append(sideNames, item.Name)
		}
	}

	order := &models.Order{
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		Quantity:        quantity,
		SizeID:          sizeID,
		SizeName:        sizeName,
		Items:           models.NameList(itemNames),
		SelectedSides:   models.NameList(sideNames),
		RemovedSides:    models.NameList(input.RemovedSides),
		Notes:           input.Notes,
		Total:           total,
		Status:          models.OrderPending,
		WhatsAppSent:    false,
		DeliveryPointID: point.ID,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.DeliveryPoint = *point

	if s.notifier.NotifyOrder(order) {
		if err := s.orderRepo.SetWhatsAppSent(order.Number, true); err != nil {
			log.Printf("order: failed to flag order #%d as notified: %v", order.Number, err)
		} else {
			order.WhatsAppSent = true
		}
	}

	return order, nil
}

// Quote prices a prospective selection without creating anything, so
// the customer UI displays exactly what submission will enforce.
func (s *orderService) Quote(sizeID *string, itemIDs []string, quantity int) (*pricing.Breakdown, error) {
	menu, err := s.menus.GetActiveMenu()
	if err != nil {
		return nil, err
	}
	base, _, _ := resolveBasePrice(menu, sizeID)
	breakdown := pricing.ComputeTotal(base, resolveItems(menu, itemIDs), clampQuantity(quantity))
	return &breakdown, nil
}

func (s *orderService) GetOrderByNumber(number uint) (*models.Order, error) {
	return s.orderRepo.GetByNumber(number)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.orderRepo.GetByStatus(status)
}

// GetTodaysOrders lists orders created today on the vendor's calendar,
// not the server's.
func (s *orderService) GetTodaysOrders() ([]models.Order, error) {
	local := schedule.VendorTime(s.now())
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	return s.orderRepo.GetByDateRange(start, start.Add(24*time.Hour))
}

// UpdateStatus moves an order to any known status. Moves are not
// forward-only: staff correct mistakes by going backward.
func (s *orderService) UpdateStatus(number uint, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	if _, err := s.orderRepo.GetByNumber(number); err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateStatus(number, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	return s.orderRepo.GetByNumber(number)
}

// operatingWindow loads the configured hours, falling back to the
// defaults when no config row exists yet.
func (s *orderService) operatingWindow() (string, string, error) {
	cfg, err := s.configRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultOpeningTime, models.DefaultClosingTime, nil
		}
		return "", "", fmt.Errorf("failed to load operating config: %w", err)
	}
	return cfg.OpeningTime, cfg.ClosingTime, nil
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	if q > 10 {
		return 10
	}
	return q
}

// resolveBasePrice picks the size's price when the id matches an active
// size on the menu, else the legacy flat price. A stale size id falls
// back silently; menu edits racing a submission are tolerated.
func resolveBasePrice(menu *models.Menu, sizeID *string) (decimal.Decimal, *string, string) {
	if sizeID != nil {
		for _, size := range menu.Sizes {
			if size.ID == *sizeID {
				id := size.ID
				return size.Price, &id, size.Name
			}
		}
	}
	return menu.Price, nil, ""
}

// resolveItems maps selected ids onto the live menu, dropping ids the
// menu no longer carries.
func resolveItems(menu *models.Menu, itemIDs []string) []models.MenuItem {
	byID := make(map[string]models.MenuItem, len(menu.Items))
	for _, item := range menu.Items {
		byID[item.ID] = item
	}
	var selected []models.MenuItem
	for _, id := range itemIDs {
		if item, ok := byID[id]; ok {
			selected = append(selected, item)
		}
	}
	return selected
}
