package scryfall

import (
	"encoding/binary"
	"time"
)

// storedValueHeaderBytes is the size of the prefix written before a raw body:
// stored-at and expires-at as unix nanoseconds, the policy duration in
// nanoseconds and a sliding flag.
const storedValueHeaderBytes = 25

// storedValue is the serialized form of an entry in the persistent and
// remote backends. It carries the entry's own policy so a sliding refresh
// restarts the lifetime the entry was written with.
type storedValue struct {
	storedAt  time.Time
	expiresAt time.Time
	policy    ExpirationPolicy
	data      []byte
}

func newStoredValue(entry *CacheEntry, fallback ExpirationPolicy, now time.Time) storedValue {
	policy := entry.policyOr(fallback)

	storedAt := entry.StoredAt
	if storedAt.IsZero() {
		storedAt = now
	}

	return storedValue{
		storedAt:  storedAt,
		expiresAt: policy.expiry(now),
		policy:    policy,
		data:      entry.Data,
	}
}

func (v storedValue) expired(now time.Time) bool {
	return !v.expiresAt.IsZero() && !now.Before(v.expiresAt)
}

// touch restarts the lifetime of a sliding entry and reports whether it did.
func (v *storedValue) touch(now time.Time) bool {
	if !v.policy.Sliding || v.policy.Duration <= 0 {
		return false
	}

	v.expiresAt = v.policy.expiry(now)

	return true
}

// ttl is the remaining lifetime at now, or zero when the entry never expires.
func (v storedValue) ttl(now time.Time) time.Duration {
	if v.expiresAt.IsZero() {
		return 0
	}

	return v.expiresAt.Sub(now)
}

func (v storedValue) entry() *CacheEntry {
	policy := v.policy

	return &CacheEntry{
		Data:     v.data,
		StoredAt: v.storedAt,
		Policy:   &policy,
	}
}

func (v storedValue) encode() []byte {
	raw := make([]byte, storedValueHeaderBytes+len(v.data))
	putTime(raw[0:8], v.storedAt)
	putTime(raw[8:16], v.expiresAt)
	binary.BigEndian.PutUint64(raw[16:24], uint64(v.policy.Duration))

	if v.policy.Sliding {
		raw[24] = 1
	}

	copy(raw[storedValueHeaderBytes:], v.data)

	return raw
}

// decodeStoredValue parses raw, copying the body out of it. It reports false
// for values too short to carry a header.
func decodeStoredValue(raw []byte) (storedValue, bool) {
	if len(raw) < storedValueHeaderBytes {
		return storedValue{}, false
	}

	data := make([]byte, len(raw)-storedValueHeaderBytes)
	copy(data, raw[storedValueHeaderBytes:])

	return storedValue{
		storedAt:  readTime(raw[0:8]),
		expiresAt: readTime(raw[8:16]),
		policy: ExpirationPolicy{
			Duration: time.Duration(binary.BigEndian.Uint64(raw[16:24])),
			Sliding:  raw[24] == 1,
		},
		data: data,
	}, true
}

func putTime(dst []byte, t time.Time) {
	if t.IsZero() {
		return
	}

	binary.BigEndian.PutUint64(dst, uint64(t.UnixNano()))
}

func readTime(src []byte) time.Time {
	nanos := binary.BigEndian.Uint64(src)
	if nanos == 0 {
		return time.Time{}
	}

	return time.Unix(0, int64(nanos))
}
