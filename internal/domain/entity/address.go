// Package entity contains the core business objects of the project.
package entity

import "regexp"

// Address is the shipping destination collected during one checkout attempt.
// It is never persisted on its own; it lives only as an embedded snapshot
// inside the Order it becomes attached to.
type Address struct {
	FullName     string `json:"fullName"`
	PhoneDigits  string `json:"phoneDigits"` // 10-digit contact number for the delivery.
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"` // Must be one of the recognized states or union territories.
	Pincode      string `json:"pincode"`
	Landmark     string `json:"landmark,omitempty"`
}

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// IsValidPincode reports whether s is a 6-digit postal code.
func IsValidPincode(s string) bool {
	return pincodePattern.MatchString(s)
}

// recognizedStates lists the states and union territories accepted by the
// address form, keyed for O(1) membership checks.
var recognizedStates = map[string]struct{}{}

// States and union territories served by the storefront.
var StateNames = []string{
	"Andhra Pradesh",
	"Arunachal Pradesh",
	"Assam",
	"Bihar",
	"Chhattisgarh",
	"Goa",
	"Gujarat",
	"Haryana",
	"Himachal Pradesh",
	"Jharkhand",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Maharashtra",
	"Manipur",
	"Meghalaya",
	"Mizoram",
	"Nagaland",
	"Odisha",
	"Punjab",
	"Rajasthan",
	"Sikkim",
	"Tamil Nadu",
	"Telangana",
	"Tripura",
	"Uttar Pradesh",
	"Uttarakhand",
	"West Bengal",
	"Andaman and Nicobar Islands",
	"Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu",
	"Delhi",
	"Jammu and Kashmir",
	"Ladakh",
	"Lakshadweep",
	"Puducherry",
}

func init() {
	for _, name := range StateNames {
		recognizedStates[name] = struct{}{}
	}
}

// IsRecognizedState reports whether name is a serviced state or union territory.
func IsRecognizedState(name string) bool {
	_, ok := recognizedStates[name]

	return ok
}
