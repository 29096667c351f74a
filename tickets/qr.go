package tickets

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const allowedDrift = 24 * 60 * 60 // seconds; tickets are checked on event day

func hmacSecret() []byte {
	if s := os.Getenv("QR_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("performance-night-dev-secret")
}

// GenerateQRPayload returns a signed payload string:
// bookingNo|seats|timestamp|signature. Seats are in compact range form,
// comma-joined.
func GenerateQRPayload(bookingNo string, seats []string) string {
	data := fmt.Sprintf("%s|%s|%d", bookingNo, strings.Join(seats, ", "), time.Now().Unix())

	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// VerifyQRPayload checks the signature and timestamp window of a scanned
// payload and returns the booking number and seat ranges it names.
func VerifyQRPayload(payload string) (bookingNo string, seats []string, err error) {
	parts := strings.Split(payload, "|")
	if len(parts) != 4 {
		return "", nil, errors.New("invalid QR format")
	}

	bookingNo = parts[0]
	seatList := parts[1]
	timestampStr := parts[2]
	signature := parts[3]

	ts, err := strconv.ParseInt(timestampStr, 10, 64)
	if err != nil {
		return "", nil, errors.New("invalid timestamp")
	}
	now := time.Now().Unix()
	if abs(now-ts) > allowedDrift {
		return "", nil, errors.New("ticket expired or from the future")
	}

	data := fmt.Sprintf("%s|%s|%s", bookingNo, seatList, timestampStr)
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	expectedSig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(signature), []byte(expectedSig)) {
		return "", nil, errors.New("invalid signature")
	}

	for _, s := range strings.Split(seatList, ",") {
		if s = strings.TrimSpace(s); s != "" {
			seats = append(seats, s)
		}
	}
	return bookingNo, seats, nil
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
