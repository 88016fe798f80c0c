package impl

import (
	"testing"

	"sprout/internal/domain/entity"
	"sprout/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddressInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		FullName:     "  Anita Desai  ",
		PhoneDigits:  "9876543210",
		AddressLine1: "14 MG Road",
		AddressLine2: "Near City Mall",
		City:         "Pune",
		State:        "Maharashtra",
		Pincode:      "411001",
		Landmark:     "Opposite park",
	}
}

func TestValidateAddress_Valid(t *testing.T) {
	address, fieldErrors := ValidateAddress(validAddressInput())
	require.Empty(t, fieldErrors)

	assert.Equal(t, "Anita Desai", address.FullName)
	assert.Equal(t, "9876543210", address.PhoneDigits)
	assert.Equal(t, "Maharashtra", address.State)
	assert.Equal(t, "411001", address.Pincode)
}

func TestValidateAddress_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(input *usecase.AddressInput)
		wantKey string
	}{
		{
			name:    "missing full name",
			mutate:  func(input *usecase.AddressInput) { input.FullName = "   " },
			wantKey: "fullName",
		},
		{
			name:    "phone too short",
			mutate:  func(input *usecase.AddressInput) { input.PhoneDigits = "98765" },
			wantKey: "phoneDigits",
		},
		{
			name:    "phone bad leading digit",
			mutate:  func(input *usecase.AddressInput) { input.PhoneDigits = "1234567890" },
			wantKey: "phoneDigits",
		},
		{
			name:    "missing address line 1",
			mutate:  func(input *usecase.AddressInput) { input.AddressLine1 = "" },
			wantKey: "addressLine1",
		},
		{
			name:    "missing city",
			mutate:  func(input *usecase.AddressInput) { input.City = "" },
			wantKey: "city",
		},
		{
			name:    "unrecognized state",
			mutate:  func(input *usecase.AddressInput) { input.State = "Atlantis" },
			wantKey: "state",
		},
		{
			name:    "pincode too short",
			mutate:  func(input *usecase.AddressInput) { input.Pincode = "4110" },
			wantKey: "pincode",
		},
		{
			name:    "pincode non numeric",
			mutate:  func(input *usecase.AddressInput) { input.Pincode = "41100a" },
			wantKey: "pincode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validAddressInput()
			tt.mutate(input)

			_, fieldErrors := ValidateAddress(input)
			assert.Contains(t, fieldErrors, tt.wantKey)
		})
	}
}

func TestValidateAddress_CollectsAllErrors(t *testing.T) {
	_, fieldErrors := ValidateAddress(&usecase.AddressInput{})
	assert.Len(t, fieldErrors, 6)
}

func TestValidateAddress_OptionalFieldsMayBeEmpty(t *testing.T) {
	input := validAddressInput()
	input.AddressLine2 = ""
	input.Landmark = ""

	_, fieldErrors := ValidateAddress(input)
	assert.Empty(t, fieldErrors)
}

func TestPrefillAddressInput(t *testing.T) {
	customer := &entity.Customer{
		Name:  "Ravi Kumar",
		Phone: "+919876543210",
		City:  "Jaipur",
		State: "Rajasthan",
	}

	input := PrefillAddressInput(customer)
	assert.Equal(t, "Ravi Kumar", input.FullName)
	assert.Equal(t, "9876543210", input.PhoneDigits)
	assert.Equal(t, "Jaipur", input.City)
	assert.Equal(t, "Rajasthan", input.State)
	assert.Empty(t, input.AddressLine1)
}

func TestPrefillAddressInput_NilCustomer(t *testing.T) {
	input := PrefillAddressInput(nil)
	require.NotNil(t, input)
	assert.Empty(t, input.FullName)
}
