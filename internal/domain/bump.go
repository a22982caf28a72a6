package domain

// BumpRequest captures which version change the user asked for. At most one
// field may be set; the flag layer enforces mutual exclusion.
type BumpRequest struct {
	Major      bool
	Minor      bool
	Patch      bool
	Prerelease bool
	SetVersion string
}

// Requested reports whether any version change was asked for at all.
func (r BumpRequest) Requested() bool {
	return r.Major || r.Minor || r.Patch || r.Prerelease || r.SetVersion != ""
}
