package db

// Rules a storage engine can report for a rejected write.
const (
	RuleUnique     = "unique"
	RuleForeignKey = "foreign_key"
	RuleCheck      = "check"
	RuleNotNull    = "required"
	RuleOutOfRange = "max_digits"
)

// Violation describes a write the storage engine rejected. Table, Column and
// Constraint are filled in as far as the driver reports them.
type Violation struct {
	Rule       string
	Table      string
	Column     string
	Constraint string
	Detail     string
}

// AsViolation classifies a driver error from lib/pq or go-sqlite3.
func AsViolation(err error) (*Violation, bool) {
	if err == nil {
		return nil, false
	}
	if v, ok := postgresViolation(err); ok {
		return v, true
	}
	return sqliteViolation(err)
}
