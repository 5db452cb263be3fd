package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaapav/kaapav-bot/internal/normalize"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "local ten digits", input: "9876543210", expected: "919876543210"},
		{name: "zero prefixed local", input: "09876543210", expected: "919876543210"},
		{name: "already canonical", input: "919876543210", expected: "919876543210"},
		{name: "plus and spaces", input: "+91 98765-43210", expected: "919876543210"},
		{name: "double zero international", input: "00919876543210", expected: "919876543210"},
		{name: "short garbage", input: "12ab3", expected: "123"},
		{name: "empty", input: "", expected: ""},
		{name: "foreign number passes through", input: "+1 (415) 555-2671", expected: "14155552671"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.Phone(tt.input))
		})
	}
}

func TestPhone_Idempotent(t *testing.T) {
	inputs := []string{
		"9876543210", "09876543210", "919876543210", "0", "000", "12345",
		"+91-98765-43210", "4155552671", "00000009876543210", "91", "1234567890123",
	}

	for _, in := range inputs {
		once := normalize.Phone(in)
		assert.Equal(t, once, normalize.Phone(once), "input %q", in)
	}
}

func TestLocalAndDisplay(t *testing.T) {
	assert.Equal(t, "9876543210", normalize.Local("919876543210"))
	assert.Equal(t, "+91 98765 43210", normalize.Display("9876543210"))
	assert.Equal(t, "123", normalize.Display("123"))
}

func TestText(t *testing.T) {
	assert.Equal(t, "hello there", normalize.Text("  Hello   THERE \n"))
	assert.Equal(t, "hi", normalize.Keyword("Hi!!! 👋"))
	assert.Equal(t, "menu", normalize.Keyword("...MENU?"))
}

func TestStripPrefixSuffix(t *testing.T) {
	assert.Equal(t, "BUY_NOW", normalize.StripPrefix("BTN_BUY_NOW", "BUTTON_", "BTN_"))
	assert.Equal(t, "buy_now", normalize.StripPrefix("btn_buy_now", "BTN_"))
	assert.Equal(t, "BUY_NOW", normalize.StripSuffix("BUY_NOW_BTN", "_BUTTON", "_BTN"))
	assert.Equal(t, "PLAIN", normalize.StripPrefix("PLAIN", "BTN_"))
}

func TestPincode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{input: "560001", expected: "560001", ok: true},
		{input: "deliver to 400 001", ok: false},
		{input: "Flat 2, MG Road, Bengaluru 560001", expected: "560001", ok: true},
		{input: "012345", ok: false},
		{input: "call me on 9876543210", ok: false},
		{input: "pin:110001.", expected: "110001", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := normalize.Pincode(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	assert.True(t, normalize.ValidPincode(" 560001 "))
	assert.False(t, normalize.ValidPincode("5600012"))
}

func TestOrderID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{input: "KAA-123456", expected: "KAA-123456", ok: true},
		{input: "where is kaa123456?", expected: "KAA-123456", ok: true},
		{input: "order kaa 654321 status", expected: "KAA-654321", ok: true},
		{input: "KAA-12345", ok: false},
		{input: "hello", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := normalize.OrderID(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
