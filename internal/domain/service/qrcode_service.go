package service

// QRCodeService defines the interface for order confirmation QR codes.
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code for an order confirmation.
	GenerateOrderQR(orderID string) ([]byte, error)

	// ParseOrderQR decodes QR payload data back into an order id.
	ParseOrderQR(qrData string) (string, error)
}
