// Package fraud holds the stateless anti-abuse policy for earn requests.
// Functions here never touch storage; callers supply the counts queried
// from the earn-event audit log.
package fraud

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Reason codes are the machine-readable rejection taxonomy surfaced to
// clients; free-text messages may change, these must not.
type Reason string

const (
	ReasonCooldown      Reason = "cooldown"
	ReasonDailyCap      Reason = "daily_cap"
	ReasonRateLimitUser Reason = "rate_limit_user"
	ReasonRateLimitIP   Reason = "rate_limit_ip"
	ReasonIPVelocity    Reason = "ip_velocity"
)

// HashIP is a deterministic keyed transform of a client IP. The raw IP
// must never be persisted or logged; only this digest reaches storage.
func HashIP(key []byte, rawIP string) string {
	h, err := blake2b.New256(key)
	if err != nil {
		// Only possible with a key longer than 64 bytes
		h, _ = blake2b.New256(nil)
	}
	h.Write([]byte(rawIP))
	return hex.EncodeToString(h.Sum(nil))
}

// ExceedsUserRate reports whether the identity's earn attempts in the
// trailing window have reached the per-user cap.
func ExceedsUserRate(attemptsLastHour int64, limit int) bool {
	if limit <= 0 {
		return false
	}
	return attemptsLastHour >= int64(limit)
}

// ExceedsIPRate reports whether the network address's earn attempts in
// the trailing window have reached the per-IP cap.
func ExceedsIPRate(attemptsLastHour int64, limit int) bool {
	if limit <= 0 {
		return false
	}
	return attemptsLastHour >= int64(limit)
}

// ExceedsIPVelocity flags one network address cycling through many
// customer identities at one business in a short burst. otherIdentities
// counts distinct wallet passes other than the requester seen in the
// velocity window; the requester always counts as one more. A single
// customer repeating earns from their own IP can never trip this.
func ExceedsIPVelocity(otherIdentities int64, threshold int) bool {
	if threshold <= 0 {
		return false
	}
	return otherIdentities+1 > int64(threshold)
}
