package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"StorefrontAPI/internal/metrics"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderMailer sends the post-payment confirmation email. Optional; a nil
// mailer skips the step.
type OrderMailer interface {
	SendOrderConfirmation(ctx context.Context, toEmail, orderNumber string, grandTotal float64) error
}

// CheckoutService drives the order lifecycle: Draft (cart only) →
// PendingPayment (order row, is_ordered=false) → Confirmed (payment linked,
// stock decremented, cart cleared). Orders the gateway never confirms simply
// stay pending.
type CheckoutService struct {
	DB          *pgxpool.Pool
	CartRepo    *repository.CartRepository
	OrderRepo   *repository.OrderRepository
	PaymentRepo *repository.PaymentRepository
	ProductRepo *repository.ProductRepository
	Metrics     *metrics.CheckoutMetrics
	Mailer      OrderMailer
}

func NewCheckoutService(
	db *pgxpool.Pool,
	cr *repository.CartRepository,
	or *repository.OrderRepository,
	pr *repository.PaymentRepository,
	prod *repository.ProductRepository,
	m *metrics.CheckoutMetrics,
	mailer OrderMailer,
) *CheckoutService {
	return &CheckoutService{
		DB:          db,
		CartRepo:    cr,
		OrderRepo:   or,
		PaymentRepo: pr,
		ProductRepo: prod,
		Metrics:     m,
		Mailer:      mailer,
	}
}

// BillingDetails is the validated checkout form.
type BillingDetails struct {
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	AddressLine1 string
	AddressLine2 string
	Country      string
	State        string
	City         string
	OrderNote    string
}

func (b BillingDetails) validate() error {
	required := map[string]string{
		"first_name":     b.FirstName,
		"last_name":      b.LastName,
		"phone":          b.Phone,
		"email":          b.Email,
		"address_line_1": b.AddressLine1,
		"country":        b.Country,
		"state":          b.State,
		"city":           b.City,
	}
	var missing []string
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// OrderNumber derives the human-facing order identifier: the creation date
// as YYYYMMDD followed by the row id. Unique because row ids are monotonic
// within a day and the date prefix differs across days.
func OrderNumber(t time.Time, orderID int64) string {
	return t.Format("20060102") + strconv.FormatInt(orderID, 10)
}

// PlaceOrder freezes the current cart totals into a new pending order.
// Two-phase write: the insert returns the row id, then the derived order
// number is stamped onto the same row; both run in one transaction.
func (s *CheckoutService) PlaceOrder(ctx context.Context, authID int64, form BillingDetails, ip string) (*model.Order, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}

	lines, err := s.CartRepo.ListLines(ctx, &authID, nil)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}
	totals := ComputeTotals(lines)

	order := &model.Order{
		AuthID:       authID,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Phone:        form.Phone,
		Email:        form.Email,
		AddressLine1: form.AddressLine1,
		OrderTotal:   totals.GrandTotal,
		Tax:          totals.Tax,
		Country:      form.Country,
		State:        form.State,
		City:         form.City,
	}
	if form.AddressLine2 != "" {
		order.AddressLine2 = &form.AddressLine2
	}
	if form.OrderNote != "" {
		order.OrderNote = &form.OrderNote
	}
	if ip != "" {
		order.IP = &ip
	}

	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	orderID, err := s.OrderRepo.CreateTx(ctx, tx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	orderNumber := OrderNumber(time.Now(), orderID)
	if err := s.OrderRepo.StampOrderNumberTx(ctx, tx, orderID, orderNumber); err != nil {
		return nil, fmt.Errorf("stamp order number: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	if s.Metrics != nil {
		s.Metrics.OrdersPlaced.Inc()
	}
	return s.OrderRepo.GetByID(ctx, orderID)
}

// Confirm finalizes a pending order after the gateway reports a settled
// payment. The whole sequence runs in one transaction whose first statement
// conditionally claims the order (is_ordered false→true); a duplicate or
// unknown callback claims nothing and the call is a no-op returning
// ErrAlreadyConfirmed. Amounts come from our own order row, never from the
// callback.
func (s *CheckoutService) Confirm(ctx context.Context, orderNumber, transactionID string) (*model.OrderConfirmation, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	order, err := s.OrderRepo.ClaimPendingTx(ctx, tx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("claim order: %w", err)
	}
	if order == nil {
		if s.Metrics != nil {
			s.Metrics.DuplicateCallbacks.Inc()
		}
		return nil, ErrAlreadyConfirmed
	}

	paymentID, err := s.PaymentRepo.CreateCompletedTx(ctx, tx, order.AuthID, transactionID, "Midtrans", order.OrderTotal)
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	if err := s.OrderRepo.LinkPaymentTx(ctx, tx, order.OrderID, paymentID); err != nil {
		return nil, fmt.Errorf("link payment: %w", err)
	}

	// Snapshot the cart into order_products at the current product price and
	// release the sold stock.
	lines, err := s.CartRepo.ListLinesByAuthTx(ctx, tx, order.AuthID)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	for _, l := range lines {
		op := &model.OrderProduct{
			OrderID:      order.OrderID,
			PaymentID:    paymentID,
			AuthID:       order.AuthID,
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			Quantity:     l.Quantity,
			ProductPrice: l.Price,
		}
		if _, err := s.OrderRepo.CreateOrderProductTx(ctx, tx, op); err != nil {
			return nil, fmt.Errorf("snapshot line: %w", err)
		}
		if err := s.ProductRepo.DecrementStockTx(ctx, tx, l.ProductID, l.Quantity); err != nil {
			return nil, fmt.Errorf("decrement stock: %w", err)
		}
	}

	if err := s.CartRepo.ClearByAuthTx(ctx, tx, order.AuthID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	if s.Metrics != nil {
		s.Metrics.OrdersConfirmed.Inc()
	}

	payment, err := s.PaymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	ordered, err := s.OrderRepo.ListOrderProducts(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	var subtotal int64
	for _, op := range ordered {
		subtotal += op.ProductPrice * int64(op.Quantity)
	}

	if s.Mailer != nil {
		if err := s.Mailer.SendOrderConfirmation(ctx, order.Email, order.OrderNumber, order.OrderTotal); err != nil {
			log.Printf("order %s: confirmation email failed: %v", order.OrderNumber, err)
		}
	}

	order.IsOrdered = true
	order.PaymentID = &paymentID
	return &model.OrderConfirmation{
		Order:           *order,
		Payment:         *payment,
		OrderedProducts: ordered,
		SubTotal:        subtotal,
	}, nil
}

// OrderHistory lists the account's confirmed orders, newest first.
func (s *CheckoutService) OrderHistory(ctx context.Context, authID int64) ([]model.Order, error) {
	return s.OrderRepo.ListConfirmedByAuth(ctx, authID)
}

// GetOwnedOrder fetches one of the account's orders by number.
func (s *CheckoutService) GetOwnedOrder(ctx context.Context, authID int64, orderNumber string) (*model.Order, error) {
	order, err := s.OrderRepo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if order.AuthID != authID {
		return nil, errors.New("forbidden")
	}
	return order, nil
}
