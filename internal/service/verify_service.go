package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"revenue-recovery/config"
	"revenue-recovery/pkg/apperror"

	"github.com/rs/zerolog"
)

// VerifyService implements ports.WebhookVerifier using HMAC-SHA256.
// Accepted signature header encodings: "sha256=<hex>", "v1,<hex>" and a
// bare hex digest. The hex is decoded before comparison so case
// differences never matter, and comparison is constant time.
type VerifyService struct {
	secret     []byte
	skewWindow time.Duration
	strict     bool // Production: timestamp header is mandatory
	log        zerolog.Logger

	// now is swapped out in tests.
	now func() time.Time
}

// NewVerifyService creates a webhook verifier from config. strict should
// be true in production, where a missing timestamp rejects the delivery.
func NewVerifyService(cfg config.WebhookConfig, strict bool, log zerolog.Logger) *VerifyService {
	return &VerifyService{
		secret:     []byte(cfg.Secret),
		skewWindow: cfg.SkewWindow,
		strict:     strict,
		log:        log,
		now:        time.Now,
	}
}

// Verify checks the signature and timestamp of a raw webhook delivery.
// Pure validation: no side effects.
func (s *VerifyService) Verify(rawBody []byte, signatureHeader, timestampHeader string) error {
	if timestampHeader == "" {
		if s.strict {
			return apperror.ErrTimestampMissing()
		}
		s.log.Warn().Msg("webhook delivered without timestamp header")
	} else {
		ts, err := strconv.ParseInt(timestampHeader, 10, 64)
		if err != nil || ts < 0 {
			return apperror.ErrTimestampInvalid()
		}

		now := s.now()
		sent := time.Unix(ts, 0)
		skew := now.Sub(sent)
		if skew < 0 {
			skew = -skew
		}
		if skew > s.skewWindow {
			return apperror.ErrTimestampExpired()
		}
	}

	provided, err := decodeSignatureHeader(signatureHeader)
	if err != nil {
		return err
	}

	// The signed material is the exact raw body bytes; replay protection
	// comes from the timestamp skew check above, not from the signature.
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(rawBody)
	expected := mac.Sum(nil)

	if !hmac.Equal(expected, provided) {
		return apperror.ErrInvalidSignature()
	}
	return nil
}

// decodeSignatureHeader extracts the raw digest bytes from any of the
// supported header encodings.
func decodeSignatureHeader(header string) ([]byte, error) {
	if header == "" {
		return nil, apperror.ErrSignatureFormat()
	}

	hexDigest := header
	switch {
	case strings.HasPrefix(header, "sha256="):
		hexDigest = strings.TrimPrefix(header, "sha256=")
	case strings.HasPrefix(header, "v1,"):
		hexDigest = strings.TrimPrefix(header, "v1,")
	}

	digest, err := hex.DecodeString(hexDigest)
	if err != nil || len(digest) != sha256.Size {
		return nil, apperror.ErrSignatureFormat()
	}
	return digest, nil
}
