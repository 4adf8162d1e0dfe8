// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Archive is the predicate function for archive builders.
type Archive func(*sql.Selector)

// Encounter is the predicate function for encounter builders.
type Encounter func(*sql.Selector)

// EncounterFile is the predicate function for encounterfile builders.
type EncounterFile func(*sql.Selector)

// GlaucomaFinding is the predicate function for glaucomafinding builders.
type GlaucomaFinding func(*sql.Selector)

// RetinopathyFinding is the predicate function for retinopathyfinding builders.
type RetinopathyFinding func(*sql.Selector)
