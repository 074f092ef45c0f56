package entities

import "encoding/json"

// GiftReference is the bundle serialized into Mercado Pago's
// external_reference field at charge-creation time and read back by the
// reconciliation engine when a notification arrives.

type GiftReference struct {
	GiftID     string `json:"gift_id"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	Message    string `json:"message"`
}

// Encode serializes the reference for the gateway. Marshal of a flat string
// struct cannot fail.
func (r GiftReference) Encode() string {
	b, _ := json.Marshal(r)
	return string(b)
}

// ParseGiftReference decodes an external_reference payload. The field is
// opaque to the gateway and may arrive empty or mangled; callers get zero
// fields back instead of an error so a bad reference never aborts
// reconciliation.
func ParseGiftReference(raw string) GiftReference {
	var ref GiftReference
	if raw == "" {
		return ref
	}
	if err := json.Unmarshal([]byte(raw), &ref); err != nil {
		return GiftReference{}
	}
	return ref
}
