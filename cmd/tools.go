package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var toolsJSON bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools this server exposes",
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Print full definitions with input schemas as JSON")
}

func runTools(_ *cobra.Command, _ []string) error {
	c, err := buildContainer("")
	if err != nil {
		return err
	}
	defs := c.Registry().Definitions()

	if toolsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(defs)
	}

	for _, d := range defs {
		verb := d.Verb
		if verb == "" {
			verb = "-"
		}
		fmt.Printf("%-45s %-5s %s\n", d.Name, verb, d.Route)
		if len(d.Required) > 0 {
			fmt.Printf("%-45s       required: %s\n", "", strings.Join(d.Required, ", "))
		}
	}
	fmt.Printf("\n%d tools\n", len(defs))
	return nil
}
