package models

type Class struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"index" json:"name"`
}

func (Class) TableName() string {
	return "classes"
}

func (Class) Kind() string {
	return KindClass
}

func (c Class) RecordID() int {
	return c.ID
}

func (c Class) WithID(id int) Class {
	c.ID = id
	return c
}
