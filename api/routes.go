package api

import (
	"fmt"

	"github.com/bigredeye/schoolbook/internal/models"
)

// Prefixes maps exposed entity kinds to their router prefix. Every route
// repeats the prefix once more below it, e.g. /students/students/{id}.
var Prefixes = map[string]string{
	models.KindStudent: "/students",
	models.KindTeacher: "/teachers",
	models.KindClass:   "/classes",
	models.KindGrade:   "/grades",
}

// CollectionPath is the path records of kind are created at.
func CollectionPath(kind string) string {
	prefix := Prefixes[kind]
	return prefix + prefix + "/"
}

func RecordPath(kind string, id int) string {
	return fmt.Sprintf("%s%d", CollectionPath(kind), id)
}

// KindByName resolves the plural collection name ("students") used on the
// command line.
func KindByName(name string) (string, bool) {
	for kind, prefix := range Prefixes {
		if prefix[1:] == name {
			return kind, true
		}
	}
	return "", false
}
