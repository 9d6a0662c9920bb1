package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_JSON(t *testing.T) {
	var testCases = []struct {
		description string
		id          ID
		expect      string
	}{
		{description: "integer", id: "42", expect: `{"product_id":42,"quantity":1}`},
		{description: "negative integer", id: "-5", expect: `{"product_id":-5,"quantity":1}`},
		{description: "leading zeros", id: "007", expect: `{"product_id":"007","quantity":1}`},
		{description: "plus sign", id: "+5", expect: `{"product_id":"+5","quantity":1}`},
		{description: "negative zero", id: "-0", expect: `{"product_id":"-0","quantity":1}`},
		{description: "sku", id: "sku-1", expect: `{"product_id":"sku-1","quantity":1}`},
		{description: "out of range", id: "99999999999999999999", expect: `{"product_id":"99999999999999999999","quantity":1}`},
	}
	for _, testCase := range testCases {
		data, err := json.Marshal(&AddCartItemRequest{ProductID: testCase.id, Quantity: 1})
		require.NoError(t, err, testCase.description)
		assert.JSONEq(t, testCase.expect, string(data), testCase.description)

		decoded := &AddCartItemRequest{}
		require.NoError(t, json.Unmarshal(data, decoded), testCase.description)
		assert.Equal(t, testCase.id, decoded.ProductID, testCase.description)
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      ID
		expectErr   bool
	}{
		{description: "number", input: `7`, expect: "7"},
		{description: "string", input: `"007"`, expect: "007"},
		{description: "null", input: `null`, expect: ""},
		{description: "object", input: `{}`, expectErr: true},
	}
	for _, testCase := range testCases {
		var id ID
		err := json.Unmarshal([]byte(testCase.input), &id)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, id, testCase.description)
	}
}
