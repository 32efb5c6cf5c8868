package midtrans

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

func NewSnapClient() *snap.Client {
	var client snap.Client

	client.New(
		os.Getenv("MIDTRANS_SERVER_KEY"),
		midtrans.Sandbox,
	)

	return &client
}

// BuildOrderRequest assembles the Snap session request for a placed order.
// The external ref doubles as the callback correlation key; success and
// cancel URLs are parameterized by the order number so the return trip can
// re-validate against our own orders table.
func BuildOrderRequest(externalRef, orderNumber string, grossAmount int64, baseURL string) *snap.Request {
	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  externalRef,
			GrossAmt: grossAmount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    orderNumber,
				Name:  "Storefront Order " + orderNumber,
				Price: grossAmount,
				Qty:   1,
			},
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/storefront/payments/complete?order_number=%s", baseURL, orderNumber),
		},
	}
}

// VerifySignature checks the webhook signature per the gateway contract:
// sha512(order_id + status_code + gross_amount + server_key).
func VerifySignature(
	orderID string,
	statusCode string,
	grossAmount string,
	signature string,
	serverKey string,
) bool {

	raw := orderID + statusCode + grossAmount + serverKey
	hash := sha512.Sum512([]byte(raw))
	expected := hex.EncodeToString(hash[:])

	return expected == signature
}
