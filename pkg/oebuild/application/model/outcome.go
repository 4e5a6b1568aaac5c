package model

type CloneStatus string

const (
	CloneStatusCloned  CloneStatus = "cloned"
	CloneStatusSkipped CloneStatus = "skipped"
	CloneStatusFailed  CloneStatus = "failed"
)

// CloneResult is the per-member outcome of a batch clone. Err is set only
// for CloneStatusFailed.
type CloneResult struct {
	Repository RepositoryName
	Status     CloneStatus
	Err        error
}

type CloneReport []CloneResult

func (r CloneReport) FailedCount() int {
	count := 0
	for _, result := range r {
		if result.Status == CloneStatusFailed {
			count++
		}
	}
	return count
}

// ScanFailure records a checkout that could not be described because one of
// its version-control queries failed. The checkout is excluded from the set.
type ScanFailure struct {
	Dir string
	Err error
}

type ScanReport struct {
	Set      *RepositorySet
	Skipped  []string
	Failures []ScanFailure
}
