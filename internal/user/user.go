package user

import (
	"os"
	"os/user"
)

// DefaultAssignee returns the name new tasks are assigned to when no
// assignee is given: the OS username, falling back to $USER, then to
// "unknown" so the value is never empty.
func DefaultAssignee() string {
	currentUser, err := user.Current()
	if err != nil {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}
