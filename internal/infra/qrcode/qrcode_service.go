package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"dncommerce/config"
	"dncommerce/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	labelType    = "order"
	defaultSize  = 256
	defaultLevel = "M"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// LabelData is the JSON content encoded in an order label
type LabelData struct {
	Type    string `json:"type"`
	OrderID int64  `json:"order_id"`
	URL     string `json:"url,omitempty"`
}

// New creates the label service from configuration, falling back to 256px at level M.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, defaultLevel, "")
	}

	size := cfg.QRCode.Size
	if size <= 0 {
		size = defaultSize
	}

	return NewQRCodeService(size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateOrderLabel renders a PNG QR code identifying an order
func (s *qrcodeService) GenerateOrderLabel(orderID int64) ([]byte, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("invalid order ID: %d", orderID)
	}

	data := LabelData{
		Type:    labelType,
		OrderID: orderID,
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/api/orders/%d", s.baseURL, orderID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderLabel parses QR code content and returns the order ID
func (s *qrcodeService) ParseOrderLabel(qrData string) (int64, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != labelType {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.OrderID <= 0 {
		return 0, fmt.Errorf("invalid order ID: %d", data.OrderID)
	}

	return data.OrderID, nil
}
