package payment

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

// QRPNG encode le lien UPI en QR code PNG, pour un paiement par scan quand le
// deep link ne s'ouvre pas.
func QRPNG(link string, size int) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, size)
}

// QRDataURL retourne le QR en base64 prêt à mettre dans <img src="...">.
func QRDataURL(link string) (string, error) {
	png, err := QRPNG(link, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
