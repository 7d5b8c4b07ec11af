package models

type Teacher struct {
	ID      int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"index" json:"name"`
	Subject string `json:"subject"`
	Surname string `json:"surname"`
	Phone   int    `json:"phone"`
	Address string `json:"address"`
	Age     int    `json:"age"`
}

func (Teacher) Kind() string {
	return KindTeacher
}

func (t Teacher) RecordID() int {
	return t.ID
}

func (t Teacher) WithID(id int) Teacher {
	t.ID = id
	return t
}
