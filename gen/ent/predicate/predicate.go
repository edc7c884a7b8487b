// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ParseJob is the predicate function for parsejob builders.
type ParseJob func(*sql.Selector)

// Posting is the predicate function for posting builders.
type Posting func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Upload is the predicate function for upload builders.
type Upload func(*sql.Selector)
