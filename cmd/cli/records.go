package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bigredeye/schoolbook/api"
	"github.com/bigredeye/schoolbook/internal/models"
	"github.com/bigredeye/schoolbook/pkg/client/schoolbook"
)

type entityOps struct {
	get    func(c *schoolbook.Client, id int) (interface{}, error)
	create func(c *schoolbook.Client, body []byte) (interface{}, error)
	update func(c *schoolbook.Client, id int, body []byte) (interface{}, error)
	delete func(c *schoolbook.Client, id int) (string, error)
}

func decode[T any](body []byte) (T, error) {
	var record T
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&record); err != nil {
		return record, fmt.Errorf("invalid record: %w", err)
	}
	return record, nil
}

func opsFor[T models.Record[T]]() entityOps {
	return entityOps{
		get: func(c *schoolbook.Client, id int) (interface{}, error) {
			record, err := schoolbook.Get[T](c, id)
			if err != nil || record == nil {
				return nil, err
			}
			return record, nil
		},
		create: func(c *schoolbook.Client, body []byte) (interface{}, error) {
			record, err := decode[T](body)
			if err != nil {
				return nil, err
			}
			return schoolbook.Create(c, record)
		},
		update: func(c *schoolbook.Client, id int, body []byte) (interface{}, error) {
			record, err := decode[T](body)
			if err != nil {
				return nil, err
			}
			return schoolbook.Update(c, id, record)
		},
		delete: func(c *schoolbook.Client, id int) (string, error) {
			return schoolbook.Delete[T](c, id)
		},
	}
}

var entities = map[string]entityOps{
	models.KindStudent: opsFor[models.Student](),
	models.KindTeacher: opsFor[models.Teacher](),
	models.KindClass:   opsFor[models.Class](),
	models.KindGrade:   opsFor[models.Grade](),
}

func resolve(name string) (entityOps, error) {
	kind, ok := api.KindByName(name)
	if !ok {
		return entityOps{}, fmt.Errorf("unknown entity %q, expected students, teachers, classes or grades", name)
	}
	return entities[kind], nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func newClient() (*schoolbook.Client, error) {
	return schoolbook.NewClient(args.Endpoint)
}

func makeGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <entity> <id>",
		Short: "Print a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			ops, err := resolve(argv[0])
			if err != nil {
				return err
			}
			id, err := parseID(argv[1])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			record, err := ops.get(c, id)
			if err != nil {
				return err
			}
			if record == nil {
				log.Warn("Record not found", zap.String("entity", argv[0]), zap.Int("id", id))
			}
			return printRecord(cmd, record)
		},
	}
}

func makeCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <entity> <json>",
		Short: "Create a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			ops, err := resolve(argv[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			record, err := ops.create(c, []byte(argv[1]))
			if err != nil {
				return err
			}
			return printRecord(cmd, record)
		},
	}
}

func makeUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <entity> <id> <json>",
		Short: "Replace every field of a record",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, argv []string) error {
			ops, err := resolve(argv[0])
			if err != nil {
				return err
			}
			id, err := parseID(argv[1])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			record, err := ops.update(c, id, []byte(argv[2]))
			if err != nil {
				return err
			}
			return printRecord(cmd, record)
		},
	}
}

func makeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entity> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			ops, err := resolve(argv[0])
			if err != nil {
				return err
			}
			id, err := parseID(argv[1])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			message, err := ops.delete(c, id)
			if err != nil {
				return err
			}
			log.Info(message, zap.String("entity", argv[0]), zap.Int("id", id))
			return nil
		},
	}
}
