package request

import "encoding/json"

// FlexibleID is a payment identifier that Mercado Pago delivers either as a
// JSON string ("data":{"id":"123"}) or as a bare number ("data":{"id":123}),
// depending on the notification mode. Both decode to their string form.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

// WebhookNotification is the envelope Mercado Pago posts on payment events.
// Only type and data.id matter; everything else is re-fetched from the API.
type WebhookNotification struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID FlexibleID `json:"id"`
	} `json:"data"`
}
