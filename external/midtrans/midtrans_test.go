package midtrans

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature(t *testing.T) {
	orderID := "ORDER-202404171-abc"
	statusCode := "200"
	grossAmount := "25500.00"
	serverKey := "sk-test"

	hash := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	signature := hex.EncodeToString(hash[:])

	assert.True(t, VerifySignature(orderID, statusCode, grossAmount, signature, serverKey))
	assert.False(t, VerifySignature(orderID, statusCode, "1.00", signature, serverKey))
	assert.False(t, VerifySignature(orderID, statusCode, grossAmount, signature, "other-key"))
}

func TestBuildOrderRequest(t *testing.T) {
	req := BuildOrderRequest("ORDER-202404171-abc", "202404171", 25500, "https://shop.example.com")

	assert.Equal(t, "ORDER-202404171-abc", req.TransactionDetails.OrderID)
	assert.Equal(t, int64(25500), req.TransactionDetails.GrossAmt)
	require.NotNil(t, req.Callbacks)
	assert.Contains(t, req.Callbacks.Finish, "order_number=202404171")
	require.NotNil(t, req.Items)
	assert.Len(t, *req.Items, 1)
}
