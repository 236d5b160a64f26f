package discord

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

const (
	HeaderSignature = "X-Signature-Ed25519"
	HeaderTimestamp = "X-Signature-Timestamp"

	maxBodySize = 1 << 20
)

var (
	ErrMissingSignature   = errors.New("missing signature headers")
	ErrMalformedTimestamp = errors.New("malformed signature timestamp")
	ErrInvalidSignature   = errors.New("invalid request signature")
)

// VerifySignature checks a detached ed25519 signature over timestamp||body.
func VerifySignature(key ed25519.PublicKey, signature, timestamp string, body []byte) error {
	if signature == "" || timestamp == "" {
		return ErrMissingSignature
	}
	if _, err := strconv.ParseInt(timestamp, 10, 64); err != nil {
		return ErrMalformedTimestamp
	}
	sig, err := hex.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return ErrInvalidSignature
	}

	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)
	if !ed25519.Verify(key, msg, sig) {
		return ErrInvalidSignature
	}
	return nil
}

// Verify rejects requests whose signature does not match the raw body with
// 401 and an empty body. The body is restored for the next handler.
func Verify(key ed25519.PublicKey, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
			r.Body.Close()
			if err != nil {
				log.Debug("verify: reading body", "error", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			err = VerifySignature(key, r.Header.Get(HeaderSignature), r.Header.Get(HeaderTimestamp), body)
			if err != nil {
				log.Debug("verify: rejected", "error", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}
