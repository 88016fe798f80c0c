// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"

	"sprout/internal/domain/entity"
	"sprout/internal/usecase"
)

// Address form field names, used as keys in the validation error map so the
// caller can highlight individual fields.
const (
	fieldFullName     = "fullName"
	fieldPhoneDigits  = "phoneDigits"
	fieldAddressLine1 = "addressLine1"
	fieldCity         = "city"
	fieldState        = "state"
	fieldPincode      = "pincode"
)

// ValidateAddress checks the submitted form and returns either the
// normalized address or a map of per-field error messages. An empty map
// means the address is acceptable.
func ValidateAddress(input *usecase.AddressInput) (entity.Address, map[string]string) {
	fieldErrors := make(map[string]string)

	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		fieldErrors[fieldFullName] = "Full name is required"
	}

	phoneDigits := strings.TrimSpace(input.PhoneDigits)
	if !entity.IsValidMobile(phoneDigits) {
		fieldErrors[fieldPhoneDigits] = "Enter a valid 10-digit mobile number"
	}

	line1 := strings.TrimSpace(input.AddressLine1)
	if line1 == "" {
		fieldErrors[fieldAddressLine1] = "Address line 1 is required"
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		fieldErrors[fieldCity] = "City is required"
	}

	state := strings.TrimSpace(input.State)
	if !entity.IsRecognizedState(state) {
		fieldErrors[fieldState] = "Select a state or union territory we deliver to"
	}

	pincode := strings.TrimSpace(input.Pincode)
	if !entity.IsValidPincode(pincode) {
		fieldErrors[fieldPincode] = "Pincode must be exactly 6 digits"
	}

	if len(fieldErrors) > 0 {
		return entity.Address{}, fieldErrors
	}

	return entity.Address{
		FullName:     fullName,
		PhoneDigits:  phoneDigits,
		AddressLine1: line1,
		AddressLine2: strings.TrimSpace(input.AddressLine2),
		City:         city,
		State:        state,
		Pincode:      pincode,
		Landmark:     strings.TrimSpace(input.Landmark),
	}, nil
}

// PrefillAddressInput seeds a blank form from a known customer. The
// remaining fields still have to be completed by the visitor.
func PrefillAddressInput(customer *entity.Customer) *usecase.AddressInput {
	if customer == nil {
		return &usecase.AddressInput{}
	}

	return &usecase.AddressInput{
		FullName:    customer.Name,
		PhoneDigits: entity.LocalDigits(customer.Phone),
		City:        customer.City,
		State:       customer.State,
	}
}
