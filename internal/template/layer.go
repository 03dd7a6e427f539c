package template

// WritePolicy controls how a layer's files interact with files already
// present at the destination.
type WritePolicy int

const (
	// Overwrite replaces whatever an earlier layer (or nothing) wrote.
	// Later layers win ties; re-runs are idempotent.
	Overwrite WritePolicy = iota

	// PreserveExisting skips files whose destination already exists.
	// Used by example layers that augment framework scaffolding without
	// clobbering files earlier layers placed.
	PreserveExisting
)

// String returns the policy name.
func (p WritePolicy) String() string {
	if p == PreserveExisting {
		return "preserve-existing"
	}
	return "overwrite"
}

// Layer is one resolved (source directory, destination subroot, write
// policy) unit applied by the materializer. Layers are computed fresh per
// run and consumed once, in order.
type Layer struct {
	// Name is a human-readable label for logs and summaries,
	// e.g. "base", "frontend:next", "auth:db:drizzle:sqlite".
	Name string

	// Source is the corpus-relative source directory (slash-separated).
	Source string

	// Dest is the destination subroot relative to the project root,
	// "." for the root itself.
	Dest string

	// Policy controls collision behavior with earlier layers' output.
	Policy WritePolicy

	// Mandatory marks layers whose failure aborts the run. Optional
	// layer failures are downgraded to warnings.
	Mandatory bool
}

// Destination subroots used by the standard corpus layout.
const (
	destRoot    = "."
	destWeb     = "apps/web"
	destNative  = "apps/native"
	destServer  = "apps/server"
	destBackend = "packages/backend"
)
