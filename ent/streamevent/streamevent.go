// Code generated by ent, DO NOT EDIT.

package streamevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the streamevent type in the database.
	Label = "stream_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStreamID holds the string denoting the stream_id field in the database.
	FieldStreamID = "stream_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the streamevent in the database.
	Table = "stream_events"
)

// Columns holds all SQL columns for streamevent fields.
var Columns = []string{
	FieldID,
	FieldStreamID,
	FieldKind,
	FieldPayload,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindLog    Kind = "log"
	KindStatus Kind = "status"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindLog, KindStatus:
		return nil
	default:
		return fmt.Errorf("streamevent: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the StreamEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStreamID orders the results by the stream_id field.
func ByStreamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
