package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumber(t *testing.T) {
	day := time.Date(2024, 4, 17, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "202404171", OrderNumber(day, 1))
	assert.Equal(t, "2024041712345", OrderNumber(day, 12345))
}

func TestOrderNumberUnique(t *testing.T) {
	// Monotonic ids within a day and distinct date prefixes across days
	// keep the numbers globally unique.
	day1 := time.Date(2024, 4, 17, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	seen := map[string]bool{}
	for id := int64(1); id <= 500; id++ {
		for _, day := range []time.Time{day1, day2} {
			n := OrderNumber(day, id)
			require.False(t, seen[n], "duplicate order number %s", n)
			seen[n] = true
		}
	}
}

func TestBillingDetailsValidate(t *testing.T) {
	valid := BillingDetails{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Phone:        "555-0100",
		Email:        "ada@example.com",
		AddressLine1: "1 Analytical Way",
		Country:      "UK",
		State:        "London",
		City:         "London",
	}
	assert.NoError(t, valid.validate())

	missing := valid
	missing.Phone = ""
	missing.City = "  "
	err := missing.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone")
	assert.Contains(t, err.Error(), "city")
}
