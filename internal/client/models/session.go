package models

// Session is the bearer token bound to one account's public projection.
// It stays valid until revoked; no expiry is modelled.
type Session struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}
