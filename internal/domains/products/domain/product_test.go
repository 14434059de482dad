package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Valid(t *testing.T) {
	product, err := NewProduct(" Widget ", decimal.RequireFromString("10.00"), 5)
	require.NoError(t, err)
	require.Equal(t, "Widget", product.Name)
	require.Equal(t, 2, product.Remaining(3))
	require.Equal(t, -1, product.Remaining(6))
}

func TestNewProduct_Validation(t *testing.T) {
	cases := []struct {
		name     string
		pname    string
		price    string
		quantity int
		want     error
	}{
		{name: "empty name", pname: "", price: "1", quantity: 1, want: ErrEmptyName},
		{name: "negative price", pname: "w", price: "-0.01", quantity: 1, want: ErrInvalidPrice},
		{name: "price overflow", pname: "w", price: "1000", quantity: 1, want: ErrInvalidPrice},
		{name: "three decimals", pname: "w", price: "1.005", quantity: 1, want: ErrInvalidPrice},
		{name: "negative quantity", pname: "w", price: "1", quantity: -1, want: ErrNegativeQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProduct(tc.pname, decimal.RequireFromString(tc.price), tc.quantity)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewProduct_MaxPriceAccepted(t *testing.T) {
	_, err := NewProduct("w", MaxPrice, 0)
	require.NoError(t, err)
}
