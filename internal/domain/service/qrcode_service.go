package service

// QRCodeService defines the interface for order label QR codes
type QRCodeService interface {
	// GenerateOrderLabel renders a PNG QR code identifying an order
	GenerateOrderLabel(orderID int64) ([]byte, error)

	// ParseOrderLabel parses QR code content and returns the order ID
	ParseOrderLabel(qrData string) (int64, error)
}
