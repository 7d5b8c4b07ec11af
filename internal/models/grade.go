package models

// Grade references a student and a class by id only. Neither reference is
// checked against the students or classes tables.
type Grade struct {
	ID        int `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID int `gorm:"index" json:"student_id"`
	ClassID   int `gorm:"index" json:"class_id"`
	Grade     int `json:"grade"`
}

func (Grade) Kind() string {
	return KindGrade
}

func (g Grade) RecordID() int {
	return g.ID
}

func (g Grade) WithID(id int) Grade {
	g.ID = id
	return g
}
