package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"star-electricals-server/config"
	"star-electricals-server/database"
	"star-electricals-server/models"
)

// OrderService owns the order lifecycle and the stock ledger: stock only
// moves through order creation (decrement) and cancellation (restore), and
// each order's writes happen in a single transaction so a failed line item
// rolls back the whole order.
type OrderService struct{}

// NewOrderService creates a new order service
func NewOrderService() *OrderService {
	return &OrderService{}
}

// CreateOrder builds an order from the requested line items. Per item the
// product must exist and carry enough stock; the decrement is a conditional
// atomic update so concurrent orders cannot oversell. Totals are recomputed
// server-side from the product's current price and discount.
func (s *OrderService) CreateOrder(userID uint, req *models.OrderRequest) (*models.Order, error) {
	return s.create(&models.Order{
		UserID:        &userID,
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
	}, req.Items)
}

// CreateBill is the walk-in (point-of-sale) variant: same ledger movement,
// but the order is created already fulfilled and paid.
func (s *OrderService) CreateBill(req *models.BillRequest) (*models.Order, error) {
	return s.create(&models.Order{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Status:        models.OrderStatusCompleted,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentStatusPaid,
	}, req.Items)
}

func (s *OrderService) create(order *models.Order, items []models.OrderItemRequest) (*models.Order, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))

		for _, item := range items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", item.ProductID, ErrProductNotFound)
				}
				return err
			}

			// Conditional decrement: zero rows affected means another order
			// took the stock first, or there was never enough
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", product.ID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   item.Quantity,
					Available:   product.Stock,
				}
			}

			subtotal := models.ItemTotal(product.Price, product.Discount, item.Quantity)
			total += subtotal
			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
				Discount:  product.Discount,
				Subtotal:  subtotal,
			})
		}

		number, err := nextOrderNumber(tx, time.Now())
		if err != nil {
			return err
		}

		order.OrderNumber = number
		order.TotalAmount = total
		order.Items = orderItems
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("🧾 Order %s created (%d items, total %.2f)", order.OrderNumber, len(order.Items), order.TotalAmount)
	return order, nil
}

// CancelOrder moves a cancellable order to Cancelled and restores each line
// item's quantity onto its product. When ownerID is non-zero the order must
// belong to that user.
func (s *OrderService) CancelOrder(orderID uint, ownerID uint) (*models.Order, error) {
	var order models.Order

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if ownerID != 0 && (order.UserID == nil || *order.UserID != ownerID) {
			return ErrNotOwner
		}

		if !order.Status.IsCancellable() {
			return &InvalidStateError{Resource: "Order", Current: string(order.Status)}
		}

		if err := tx.Model(&order).Update("status", models.OrderStatusCancelled).Error; err != nil {
			return err
		}
		order.Status = models.OrderStatusCancelled

		for _, item := range order.Items {
			err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("🧾 Order %s cancelled, stock restored", order.OrderNumber)
	return &order, nil
}

// UpdateStatus applies an admin-driven order status transition
func (s *OrderService) UpdateStatus(orderID uint, next models.OrderStatus) (*models.Order, error) {
	if !models.IsValidOrderStatus(next) {
		return nil, &ValidationError{Message: "unknown order status: " + string(next)}
	}
	if next == models.OrderStatusCancelled {
		return s.CancelOrder(orderID, 0)
	}

	var order models.Order
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if !order.Status.CanTransitionTo(next) {
			return &InvalidStateError{Resource: "Order", Current: string(order.Status)}
		}

		if err := tx.Model(&order).Update("status", next).Error; err != nil {
			return err
		}
		order.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("🧾 Order %s moved to %s", order.OrderNumber, order.Status)
	return &order, nil
}

// nextOrderNumber produces "ORD-YYMMDD-NNNN" from a per-day counter row.
// The upsert-and-return is a single statement, so concurrent orders get
// distinct sequence numbers.
func nextOrderNumber(tx *gorm.DB, now time.Time) (string, error) {
	prefix := config.AppConfig.Store.OrderNumberPrefix
	key := fmt.Sprintf("%s-%s", prefix, now.Format("060102"))

	var seq int64
	err := tx.Raw(`
		INSERT INTO order_counters (key, value) VALUES (?, 1)
		ON CONFLICT (key) DO UPDATE SET value = order_counters.value + 1
		RETURNING value`, key).Scan(&seq).Error
	if err != nil {
		return "", err
	}

	return FormatOrderNumber(prefix, now, seq), nil
}

// FormatOrderNumber renders the human-readable order number
func FormatOrderNumber(prefix string, day time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, day.Format("060102"), seq)
}
