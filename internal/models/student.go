package models

// Student ids are picked by the caller, zero included.
type Student struct {
	ID      int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name    string `gorm:"index" json:"name"`
	Surname string `json:"surname"`
	Phone   int    `json:"phone"`
	Age     int    `json:"age"`
}

func (Student) Kind() string {
	return KindStudent
}

func (s Student) RecordID() int {
	return s.ID
}

func (s Student) WithID(id int) Student {
	s.ID = id
	return s
}
