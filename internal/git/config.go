package git

import "time"

type Config struct {
	// RepoPath is the working tree all operations run against.
	RepoPath string

	Remote string
	Branch string

	AuthorName  string
	AuthorEmail string

	// Timeout bounds the push, the only networked operation.
	Timeout time.Duration
}
