package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"compliance-portal-backend/internal/config"
	apperrors "compliance-portal-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func signPayload(secret string, ts int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestStripeVerifySignature(t *testing.T) {
	const secret = "whsec_test"
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	svc := &StripeService{
		cfg: &config.Config{StripeWebhookSecret: secret},
		now: func() time.Time { return now },
	}

	t.Run("valid signature", func(t *testing.T) {
		ts := now.Unix()
		header := fmt.Sprintf("t=%d,v1=%s", ts, signPayload(secret, ts, payload))
		assert.NoError(t, svc.verifySignature(payload, header))
	})

	t.Run("multiple signatures, one valid", func(t *testing.T) {
		ts := now.Unix()
		header := fmt.Sprintf("t=%d,v1=%s,v1=%s", ts, "deadbeef", signPayload(secret, ts, payload))
		assert.NoError(t, svc.verifySignature(payload, header))
	})

	t.Run("wrong secret", func(t *testing.T) {
		ts := now.Unix()
		header := fmt.Sprintf("t=%d,v1=%s", ts, signPayload("whsec_other", ts, payload))
		assert.ErrorIs(t, svc.verifySignature(payload, header), apperrors.ErrWebhookSignatureInvalid)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		ts := now.Add(-10 * time.Minute).Unix()
		header := fmt.Sprintf("t=%d,v1=%s", ts, signPayload(secret, ts, payload))
		assert.ErrorIs(t, svc.verifySignature(payload, header), apperrors.ErrWebhookSignatureInvalid)
	})

	t.Run("tampered payload", func(t *testing.T) {
		ts := now.Unix()
		header := fmt.Sprintf("t=%d,v1=%s", ts, signPayload(secret, ts, payload))
		assert.ErrorIs(t, svc.verifySignature([]byte(`{"id":"evt_2"}`), header), apperrors.ErrWebhookSignatureInvalid)
	})

	t.Run("missing header parts", func(t *testing.T) {
		assert.ErrorIs(t, svc.verifySignature(payload, ""), apperrors.ErrWebhookSignatureInvalid)
		assert.ErrorIs(t, svc.verifySignature(payload, "t=123"), apperrors.ErrWebhookSignatureInvalid)
		assert.ErrorIs(t, svc.verifySignature(payload, "v1=abc"), apperrors.ErrWebhookSignatureInvalid)
	})
}
