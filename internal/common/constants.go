package common

// Record keys of the durable key/value medium.
const (
	// UsersRecordKey holds the JSON array of every registered account.
	UsersRecordKey = "auth_master_users"

	// SessionRecordKey holds the single active session; absent when logged out.
	SessionRecordKey = "auth_master_session"
)
