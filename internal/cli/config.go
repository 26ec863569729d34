package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/worldclock/internal/config"
	"github.com/mrz1836/worldclock/internal/ctxutil"
	"github.com/mrz1836/worldclock/internal/tui"
)

// AddConfigCommand adds the config command and its subcommands.
func AddConfigCommand(root *cobra.Command, global *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect worldclock configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration with the source of every value:
  - default: built-in default
  - file:    from ~/.worldclock/config.yaml or --config
  - env:     from a WORLDCLOCK_* environment variable

Examples:
  worldclock config show          # YAML with source comments
  worldclock config show -o json  # JSON list of settings`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), global)
		},
	})
	root.AddCommand(cmd)
}

func runConfigShow(ctx context.Context, w io.Writer, global *GlobalFlags) error {
	if err := ctxutil.Check(ctx, "config show"); err != nil {
		return err
	}

	_, settings, err := config.Describe(global.ConfigPath)
	if err != nil {
		return err
	}

	if global.Output == OutputJSON {
		return tui.NewOutput(w, OutputJSON).JSON(settings)
	}

	doc, err := settingsDocument(settings)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "# Effective worldclock configuration (%s > %s > %s)\n",
		config.SourceEnv, config.SourceFile, config.SourceDefault)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// settingsDocument builds a YAML tree from dotted setting keys, with each
// value's source as a line comment.
func settingsDocument(settings []config.Setting) (*yaml.Node, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range settings {
		parts := strings.Split(s.Key, ".")
		parent := root
		for _, p := range parts[:len(parts)-1] {
			parent = mappingChild(parent, p)
		}

		key := &yaml.Node{Kind: yaml.ScalarNode, Value: parts[len(parts)-1]}
		val := &yaml.Node{}
		if err := val.Encode(s.Value); err != nil {
			return nil, fmt.Errorf("encode %s: %w", s.Key, err)
		}
		if val.Kind == yaml.ScalarNode {
			val.LineComment = string(s.Source)
		} else {
			key.LineComment = string(s.Source)
		}
		parent.Content = append(parent.Content, key, val)
	}
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}, nil
}

// mappingChild returns the mapping stored under key in m, adding it if absent.
func mappingChild(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	child := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, child)
	return child
}
