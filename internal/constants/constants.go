package constants

// SessionState represents the current surface of the TUI application
type SessionState int

const (
	AppName           = "choreboard"
	DefaultKeyringKey = "session-cookie"
	Version           = "v0.3.1"

	// DateFormat is the standard calendar-day format used on the wire and
	// throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DisplayDateFormat is the short human-readable day format
	DisplayDateFormat = "Mon, Jan 2"

	// DaysPerWeek is the size of the displayed grid window
	DaysPerWeek = 7
)

// Session states
const (
	StateUserSelect SessionState = iota
	StateWeek
	StateDetail
	StateAddNote
	StateConfirmReject
	StateReview
	StateManage
	StateAddChore
	StateEditChore
	StateAddUser
	StateAssign
	StatePayouts
	StateConfirmPayout
)
