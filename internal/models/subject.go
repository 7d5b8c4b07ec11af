package models

// Subject is reserved: its table is created at start-up, but no service or
// route reads or writes it yet.
type Subject struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"index" json:"name"`
}

func (Subject) Kind() string {
	return KindSubject
}

func (s Subject) RecordID() int {
	return s.ID
}

func (s Subject) WithID(id int) Subject {
	s.ID = id
	return s
}
