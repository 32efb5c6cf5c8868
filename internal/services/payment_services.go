package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	mt "StorefrontAPI/external/midtrans"
	"StorefrontAPI/internal/metrics"
	"StorefrontAPI/internal/repository"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go/snap"
)

// PaymentService owns the gateway boundary: creating hosted-payment sessions
// for pending orders and translating asynchronous gateway notifications into
// checkout confirmations.
type PaymentService struct {
	Snap      *snap.Client
	OrderRepo *repository.OrderRepository
	Checkout  *CheckoutService
	Metrics   *metrics.CheckoutMetrics
	BaseURL   string
}

func NewPaymentService(
	snapClient *snap.Client,
	or *repository.OrderRepository,
	checkout *CheckoutService,
	m *metrics.CheckoutMetrics,
	baseURL string,
) *PaymentService {
	return &PaymentService{
		Snap:      snapClient,
		OrderRepo: or,
		Checkout:  checkout,
		Metrics:   m,
		BaseURL:   baseURL,
	}
}

// ExternalRef builds the gateway correlation key for an order. The order
// number is embedded so notifications can be mapped back; the uuid suffix
// keeps retried sessions distinct on the gateway side.
func ExternalRef(orderNumber string) string {
	return fmt.Sprintf("ORDER-%s-%s", orderNumber, uuid.NewString())
}

// OrderNumberFromRef extracts the order number from an ORDER-<number>-<uuid>
// external reference.
func OrderNumberFromRef(ref string) (string, error) {
	parts := strings.SplitN(ref, "-", 3)
	if len(parts) != 3 || parts[0] != "ORDER" || parts[1] == "" {
		return "", errors.New("invalid order reference")
	}
	return parts[1], nil
}

// CreateSession requests a hosted-payment session for a pending order and
// returns the redirect URL the customer must be sent to. A gateway failure
// leaves the order pending and surfaces ErrGatewayUnavailable so the client
// can retry.
func (s *PaymentService) CreateSession(ctx context.Context, authID int64, orderNumber string) (string, string, error) {
	order, err := s.OrderRepo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return "", "", ErrOrderNotFound
	}
	if order.AuthID != authID {
		return "", "", errors.New("forbidden")
	}
	if order.IsOrdered {
		return "", "", errors.New("order already paid")
	}

	// Gateway wants the amount in minor currency units.
	gross := int64(math.Round(order.OrderTotal * 100))
	req := mt.BuildOrderRequest(ExternalRef(orderNumber), orderNumber, gross, s.BaseURL)

	resp, snapErr := s.Snap.CreateTransaction(req)
	if snapErr != nil {
		if s.Metrics != nil {
			s.Metrics.GatewayFailures.Inc()
		}
		return "", "", fmt.Errorf("%w: %s", ErrGatewayUnavailable, snapErr.Error())
	}
	return resp.RedirectURL, resp.Token, nil
}

// HandleNotification processes the gateway's server-to-server callback.
// The payload is untrusted: the signature must verify, and the confirmation
// only ever uses amounts from our own order row.
func (s *PaymentService) HandleNotification(ctx context.Context, payload map[string]interface{}) error {
	orderIDStr, ok := payload["order_id"].(string)
	if !ok {
		return errors.New("missing order_id")
	}
	orderNumber, err := OrderNumberFromRef(orderIDStr)
	if err != nil {
		return err
	}

	statusCode, _ := payload["status_code"].(string)
	grossAmount, _ := payload["gross_amount"].(string)
	signature, _ := payload["signature_key"].(string)

	if !mt.VerifySignature(
		orderIDStr,
		statusCode,
		grossAmount,
		signature,
		os.Getenv("MIDTRANS_SERVER_KEY"),
	) {
		return errors.New("invalid signature")
	}

	transactionID, _ := payload["transaction_id"].(string)
	transactionStatus, _ := payload["transaction_status"].(string)
	fraudStatus, _ := payload["fraud_status"].(string)

	switch transactionStatus {

	case "settlement":
		return s.confirm(ctx, orderNumber, transactionID)

	case "capture":
		if fraudStatus == "accept" {
			return s.confirm(ctx, orderNumber, transactionID)
		}

	case "expire", "cancel", "deny":
		// Order stays PendingPayment; abandoned orders have no cleanup here.
		return nil
	}

	return nil
}

func (s *PaymentService) confirm(ctx context.Context, orderNumber, transactionID string) error {
	_, err := s.Checkout.Confirm(ctx, orderNumber, transactionID)
	if errors.Is(err, ErrAlreadyConfirmed) {
		// duplicate notification → safely ignore
		return nil
	}
	return err
}
