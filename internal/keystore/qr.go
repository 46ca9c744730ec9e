package keystore

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// QRCode generates a PNG QR code of address
func QRCode(address string) ([]byte, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}

// QRCodeBase64 generates QR code of address in base64
func QRCodeBase64(address string) (string, error) {
	png, err := QRCode(address)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// WriteQRCode writes the QR code PNG of address to path
func WriteQRCode(path, address string) error {
	png, err := QRCode(address)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0644); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}
	return nil
}
