package api

import "github.com/bigredeye/schoolbook/internal/models"

// Request bodies use pointers so that a missing field can be told apart from
// a zero value. Every field is required.
type Request[T any] interface {
	Model() T
}

type StudentRequest struct {
	ID      *int    `json:"id" binding:"required"`
	Name    *string `json:"name" binding:"required"`
	Surname *string `json:"surname" binding:"required"`
	Phone   *int    `json:"phone" binding:"required"`
	Age     *int    `json:"age" binding:"required"`
}

func (r StudentRequest) Model() models.Student {
	return models.Student{
		ID:      *r.ID,
		Name:    *r.Name,
		Surname: *r.Surname,
		Phone:   *r.Phone,
		Age:     *r.Age,
	}
}

// TeacherRequest has no id, teachers are numbered by the store.
type TeacherRequest struct {
	Name    *string `json:"name" binding:"required"`
	Subject *string `json:"subject" binding:"required"`
	Surname *string `json:"surname" binding:"required"`
	Phone   *int    `json:"phone" binding:"required"`
	Address *string `json:"address" binding:"required"`
	Age     *int    `json:"age" binding:"required"`
}

func (r TeacherRequest) Model() models.Teacher {
	return models.Teacher{
		Name:    *r.Name,
		Subject: *r.Subject,
		Surname: *r.Surname,
		Phone:   *r.Phone,
		Address: *r.Address,
		Age:     *r.Age,
	}
}

type ClassRequest struct {
	Name *string `json:"name" binding:"required"`
}

func (r ClassRequest) Model() models.Class {
	return models.Class{Name: *r.Name}
}

type GradeRequest struct {
	StudentID *int `json:"student_id" binding:"required"`
	ClassID   *int `json:"class_id" binding:"required"`
	Grade     *int `json:"grade" binding:"required"`
}

func (r GradeRequest) Model() models.Grade {
	return models.Grade{
		StudentID: *r.StudentID,
		ClassID:   *r.ClassID,
		Grade:     *r.Grade,
	}
}
