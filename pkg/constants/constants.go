package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
)

// Persisted state keys. The prefix mirrors the storage layout the web
// client has always used, so both can point at the same backend.
const (
	KeyPatients      = "mp_patients"
	KeyAppointments  = "mp_appointments"
	KeyProfile       = "mp_profile"
	KeyNotifications = "mp_notifications"
)
