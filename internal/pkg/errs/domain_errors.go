package errs

// Error kinds surfaced by the application services. Concrete errors are marked
// with one of these so callers can branch with errors.Is.
var (
	ErrInvalidArgument      = New("invalid argument")
	ErrWorkspaceNotFound    = New("workspace not found")
	ErrDuplicateWorkspace   = New("duplicate workspace")
	ErrInvalidOpeningHours  = New("invalid opening hours")
	ErrDuplicateReservation = New("duplicate reservation")
	ErrWorkspaceFull        = New("workspace full")
	ErrAuthenticationFailed = New("authentication failed")
)

var kinds = []error{
	ErrInvalidArgument,
	ErrWorkspaceNotFound,
	ErrDuplicateWorkspace,
	ErrInvalidOpeningHours,
	ErrDuplicateReservation,
	ErrWorkspaceFull,
	ErrAuthenticationFailed,
}
