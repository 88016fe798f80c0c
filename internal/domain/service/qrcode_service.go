package service

import "github.com/google/uuid"

// QRCodeService renders order tracking QR codes for the confirmation view.
type QRCodeService interface {
	// GenerateOrderQR encodes the tracking URL for an order as a PNG image.
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)
}
