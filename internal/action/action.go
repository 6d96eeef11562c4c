// Package action decides which database action a command line asked for.
package action

// Action is the single database action selected for a run.
type Action int

const (
	None     Action = iota // neither flag given
	Create                 // build a fresh database from the schema
	Migrate                // move legacy rows into the current table
	Conflict               // both flags given
)

const (
	UsageMessage    = "-create or -migrate must be specified!"
	ConflictMessage = "You cannot create as well as migrate at the same time!"
)

// Select maps the two command line switches onto exactly one Action.
func Select(create, migrate bool) Action {
	switch {
	case create && migrate:
		return Conflict
	case create:
		return Create
	case migrate:
		return Migrate
	}
	return None
}

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case Create:
		return "create"
	case Migrate:
		return "migrate"
	case Conflict:
		return "conflict"
	}
	return "unknown"
}
