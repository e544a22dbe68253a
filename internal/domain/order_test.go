package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_NullReferencesUseFallbacks(t *testing.T) {
	var o Order
	err := json.Unmarshal([]byte(`{
		"_id": "o1",
		"userId": null,
		"items": [{"productId": null, "quantity": 2, "price": 10}],
		"totalAmount": 20,
		"shippingAddress": null
	}`), &o)
	require.NoError(t, err)

	require.Len(t, o.Items, 1)
	assert.Equal(t, FallbackProduct, o.Items[0].ProductName())
	assert.Equal(t, FallbackProduct, o.Items[0].Label())
	assert.Equal(t, FallbackOption, o.Items[0].ColorOrFallback())
	assert.Equal(t, FallbackOption, o.Items[0].SizeOrFallback())
	assert.Equal(t, FallbackAddress, o.ShippingLine())
	assert.Equal(t, FallbackUser, o.UserName())
	assert.Equal(t, FallbackEmail, o.UserEmail())
	assert.Empty(t, o.UserID())
	assert.Nil(t, o.CreatedAt)
}

func TestOrder_PopulatedReferences(t *testing.T) {
	var o Order
	err := json.Unmarshal([]byte(`{
		"_id": "o2",
		"userId": {"_id": "u1", "firstName": "Ana", "lastName": "Diaz", "email": "ana@example.com"},
		"items": [{
			"productId": {"_id": "p1", "name": "Hoodie"},
			"quantity": 1,
			"price": 45.5,
			"color": "noir",
			"size": "M",
			"customizationOptions": [{"position": "dos", "customizationSize": "L", "imageUrl": "https://img/x.png"}]
		}],
		"totalAmount": 45.5,
		"shippingAddress": {"name": "Ana", "street": "1 rue", "city": "Nanterre", "postalCode": 92000},
		"createdAt": "2024-05-02T10:00:00Z"
	}`), &o)
	require.NoError(t, err)

	assert.Equal(t, "u1", o.UserID())
	assert.Equal(t, "Ana Diaz", o.UserName())
	assert.Equal(t, "ana@example.com", o.UserEmail())
	assert.Equal(t, "Hoodie (Quantité: 1)", o.Items[0].Label())
	assert.Equal(t, "noir", o.Items[0].ColorOrFallback())
	assert.Equal(t, StringList{"L"}, o.Items[0].CustomizationOptions[0].CustomizationSize)
	assert.Equal(t, "Ana, 1 rue, Nanterre, 92000", o.ShippingLine())
	require.NotNil(t, o.CreatedAt)
}

func TestOrderItem_BareProductID(t *testing.T) {
	var item OrderItem
	require.NoError(t, json.Unmarshal([]byte(`{"productId": "p7", "quantity": 3}`), &item))

	assert.Equal(t, "p7", item.ProductName())
	assert.Equal(t, "p7 (Quantité: 3)", item.Label())
}
