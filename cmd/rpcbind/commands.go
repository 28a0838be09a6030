package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/rpcbase"
	"github.com/reoring/rpcbase/internal/jsontree"
)

var (
	inputYAML  bool
	strictKeys bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the functions of the interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, e := range entries(catalog(logger)) {
			fmt.Fprintf(out, "%d\t%s\t%s\n", e.id, e.fam.kind, e.name)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <function> [file]",
	Short: "Bind a payload, report validation issues, and deliver it to the handler",
	Long: `Bind a JSON or YAML payload (file or stdin) as the given function and
route it through the validity gate. Issues are printed as JSON; the command
fails when the payload is rejected.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCheck,
}

var encodeCmd = &cobra.Command{
	Use:   "encode <function> [file]",
	Short: "Print the canonical JSON encoding of a payload",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runEncode,
}

var presenceCmd = &cobra.Command{
	Use:   "presence <function> [file]",
	Short: "Print the JSON Pointers present in a payload with their presence flags",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPresence,
}

var schemaCmd = &cobra.Command{
	Use:   "schema <function>",
	Short: "Print the JSON Schema of a function's parameters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := resolve(catalog(logger), args[0])
		if err != nil {
			return err
		}
		m, err := e.fam.create(e.id)
		if err != nil {
			return err
		}
		s := m.JSONSchema()
		s.Title = e.name
		b, err := jsontree.Encode(s)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{checkCmd, encodeCmd, presenceCmd} {
		c.Flags().BoolVar(&inputYAML, "yaml", false, "read the payload as YAML (implied by a .yaml/.yml file)")
	}
	checkCmd.Flags().BoolVar(&strictKeys, "strict-keys", false, "reject payloads that repeat an object key")
	rootCmd.AddCommand(listCmd, checkCmd, encodeCmd, presenceCmd, schemaCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	e, err := resolve(catalog(logger), args[0])
	if err != nil {
		return err
	}
	data, err := readPayload(cmd, args[1:])
	if err != nil {
		return err
	}
	iss, routeErr := e.fam.route(cmd.Context(), e.id, data, routerOptions())
	if len(iss) > 0 {
		b, err := jsontree.Encode(iss)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(b); err != nil {
			return err
		}
	}
	return routeErr
}

func runEncode(cmd *cobra.Command, args []string) error {
	m, err := bindPayload(cmd, args)
	if err != nil {
		return err
	}
	if iss := rpcbase.Validate(m); iss != nil {
		logger.Warn().Err(iss).Msg("encoding invalid message")
	}
	b, err := rpcbase.Marshal(m)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

func runPresence(cmd *cobra.Command, args []string) error {
	m, err := bindPayload(cmd, args)
	if err != nil {
		return err
	}
	pm := rpcbase.CollectPresence(m)
	out := cmd.OutOrStdout()
	for _, p := range pm.Paths() {
		fmt.Fprintf(out, "%s\t%s\n", p, presenceString(pm[p]))
	}
	return nil
}

func bindPayload(cmd *cobra.Command, args []string) (rpcbase.Message, error) {
	e, err := resolve(catalog(logger), args[0])
	if err != nil {
		return nil, err
	}
	data, err := readPayload(cmd, args[1:])
	if err != nil {
		return nil, err
	}
	node, err := rpcbase.ParseJSON(data)
	if err != nil {
		return nil, err
	}
	m, err := e.fam.create(e.id)
	if err != nil {
		return nil, err
	}
	m.ReadJSON(node)
	return m, nil
}

// readPayload returns the payload as JSON text. YAML input is converted
// through the JSON tree.
func readPayload(cmd *cobra.Command, args []string) ([]byte, error) {
	var (
		data []byte
		err  error
		yaml = inputYAML
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
		ext := strings.ToLower(filepath.Ext(args[0]))
		yaml = yaml || ext == ".yaml" || ext == ".yml"
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if !yaml {
		return data, nil
	}
	node, err := jsontree.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse yaml payload: %w", err)
	}
	return jsontree.Encode(node)
}

func presenceString(p rpcbase.Presence) string {
	var parts []string
	if p&rpcbase.PresenceSeen != 0 {
		parts = append(parts, "seen")
	}
	if p&rpcbase.PresenceWasNull != 0 {
		parts = append(parts, "null")
	}
	if p&rpcbase.PresenceDefaultApplied != 0 {
		parts = append(parts, "default")
	}
	return strings.Join(parts, ",")
}
