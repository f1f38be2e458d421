package server

import qr "github.com/skip2/go-qrcode"

// GenerateQR creates a QR code PNG image for the given URL.
func GenerateQR(url string) ([]byte, error) {
	return qr.Encode(url, qr.Medium, 256)
}

// QRString renders the URL as a QR code made of terminal block characters.
func QRString(url string) (string, error) {
	code, err := qr.New(url, qr.Medium)
	if err != nil {
		return "", err
	}
	return code.ToSmallString(false), nil
}
