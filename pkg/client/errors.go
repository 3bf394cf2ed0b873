package client

import "errors"

var (
	// ErrDaemonNotRunning means nothing listens on the daemon socket.
	ErrDaemonNotRunning = errors.New("battreport daemon not running")

	// ErrPermissionDenied means the daemon socket is not accessible to the
	// current user.
	ErrPermissionDenied = errors.New("permission denied on daemon socket")

	// ErrNotFound is returned when the daemon answers 404, usually because it
	// is older than the client.
	ErrNotFound = errors.New("404 not found")
)
