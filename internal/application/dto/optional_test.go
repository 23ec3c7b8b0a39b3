package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_TriState(t *testing.T) {
	var in UpdateMenuItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price": 9.99, "description": null}`), &in))

	assert.True(t, in.Price.HasValue())
	assert.True(t, in.Price.Value.Equal(decimal.RequireFromString("9.99")))

	assert.True(t, in.Description.Set, "null cuenta como presente")
	assert.True(t, in.Description.Null)
	assert.Nil(t, in.Description.Ptr())

	assert.False(t, in.Name.Set, "campo ausente")
	assert.False(t, in.IngredientIDs.Set)
}

func TestOptional_SliceValue(t *testing.T) {
	var in UpdateMenuItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"ingredient_ids": []}`), &in))
	assert.True(t, in.IngredientIDs.HasValue(), "lista vacía es un valor (vacía el conjunto)")
	assert.Empty(t, in.IngredientIDs.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"ingredient_ids": null}`), &in))
	assert.False(t, in.IngredientIDs.HasValue())
}

func TestOptional_InvalidValue(t *testing.T) {
	var in UpdateOrderRequest
	err := json.Unmarshal([]byte(`{"table_number": "five"}`), &in)
	assert.Error(t, err)
}

func TestOptional_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Optional[int]    `json:"a"`
		B Optional[string] `json:"b"`
	}{A: Some(3), B: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(b))
}

func TestPageRequest_DefaultPage(t *testing.T) {
	p := PageRequest{Skip: -4, Limit: 0}
	p.DefaultPage()
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, DefaultLimit, p.Limit)

	p = PageRequest{Skip: 10, Limit: 5000}
	p.DefaultPage()
	assert.Equal(t, 10, p.Skip)
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestDecimalMarshalsAsNumber(t *testing.T) {
	b, err := json.Marshal(MenuItemResponse{Price: decimal.RequireFromString("2.50")})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"price":2.5`)
}
