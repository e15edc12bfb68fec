package models

// MessageEvent represents a normalized email event derived from one message row.
// To holds the deduplicated union of the To/Bcc/Cc header fields with empty
// entries removed; Time is the message date as Unix seconds.
type MessageEvent struct {
	To   []string `json:"to"`
	From string   `json:"from"`
	Time int64    `json:"time"`
}
