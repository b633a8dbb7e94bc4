package git

// Remote identifies a configured remote, used for push diagnostics.
type Remote struct {
	Name string
	URLs []string
}

// Commit is the result of a successful commit operation.
type Commit struct {
	Hash    string
	Message string
}
