package domain

// LedgerTransition is the row change a like or follow request resolves to.
type LedgerTransition int8

const (
	LedgerInsert LedgerTransition = iota + 1
	LedgerRestore
	LedgerSoftDelete
)

func (t LedgerTransition) String() string {
	switch t {
	case LedgerInsert:
		return "insert"
	case LedgerRestore:
		return "restore"
	case LedgerSoftDelete:
		return "soft_delete"
	default:
		return "unknown"
	}
}

// Step is the counter delta a successful transition implies.
func (t LedgerTransition) Step() int64 {
	if t == LedgerSoftDelete {
		return -1
	}
	return 1
}

// PlanActivate decides how to make an edge active given the row found for its
// key, in any deleted state. errActive is returned when it already is.
func PlanActivate(exists, deleted bool, errActive error) (LedgerTransition, error) {
	switch {
	case !exists:
		return LedgerInsert, nil
	case deleted:
		return LedgerRestore, nil
	default:
		return 0, errActive
	}
}

// PlanDeactivate returns errInactive when there is no active row to delete.
func PlanDeactivate(exists, deleted bool, errInactive error) (LedgerTransition, error) {
	if !exists || deleted {
		return 0, errInactive
	}
	return LedgerSoftDelete, nil
}
