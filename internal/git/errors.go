package git

import "errors"

var (
	ErrPathInaccessible = errors.New("cannot enter repository path")
	ErrNotARepository   = errors.New("path is not a git working tree")
	ErrStageFailed      = errors.New("failed to stage changes")
	ErrCommitFailed     = errors.New("failed to commit changes")
	ErrPushFailed       = errors.New("failed to push to remote")
)
