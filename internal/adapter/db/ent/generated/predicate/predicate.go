// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Certificate is the predicate function for certificate builders.
type Certificate func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// Enrollment is the predicate function for enrollment builders.
type Enrollment func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// Quiz is the predicate function for quiz builders.
type Quiz func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)

// Section is the predicate function for section builders.
type Section func(*sql.Selector)
