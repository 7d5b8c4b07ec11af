package models

const (
	KindStudent = "Student"
	KindTeacher = "Teacher"
	KindClass   = "Class"
	KindGrade   = "Grade"
	KindSubject = "Subject"
)

// Record is implemented by every stored entity kind. WithID returns a copy
// carrying the given id, the receiver is left untouched.
type Record[T any] interface {
	Kind() string
	RecordID() int
	WithID(id int) T
}

// IdentityRule tells who picks the id of a new record.
type IdentityRule int

const (
	ServerAssigned IdentityRule = iota
	ClientAssigned
)

func (r IdentityRule) String() string {
	switch r {
	case ClientAssigned:
		return "client-assigned"
	default:
		return "server-assigned"
	}
}

// Reserved lists entity kinds that have a schema but are not exposed yet.
var Reserved = []string{KindSubject}

// Schema returns every table the store must hold, reserved kinds included.
func Schema() []interface{} {
	return []interface{}{
		&Student{},
		&Teacher{},
		&Class{},
		&Grade{},
		&Subject{},
	}
}
