package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// render formats record as indented JSON, or converts that JSON to YAML
// keeping the field order and the json field names.
func render(record interface{}, format string) ([]byte, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, err
	}
	if format != outputYAML || record == nil {
		return data, nil
	}

	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func printRecord(cmd *cobra.Command, record interface{}) error {
	out, err := render(record, args.Output)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
