package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yfedoseev/meta-oxide/internal/metadata"
	"github.com/yfedoseev/meta-oxide/types"
)

func (a *app) oembedCmd() *cobra.Command {
	var (
		format  string
		yamlOut bool
	)

	cmd := &cobra.Command{
		Use:   "oembed <endpoint-url>",
		Short: "Fetch and parse an oEmbed provider response",
		Long: `Fetch an oEmbed endpoint, as discovered by "extract -f oembed", and
parse its response. The format is taken from the response Content-Type
unless --format is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.fetch(cmd.Context(), args[0], a.cfg.Extract.MaxBufferSize)
			if err != nil {
				return err
			}

			f := types.OEmbedFormat(strings.ToLower(format))
			if format == "" {
				f = types.OEmbedJSON
				if strings.Contains(strings.ToLower(d.contentType), "xml") {
					f = types.OEmbedXML
				}
			}

			res, err := metadata.ParseOEmbed(d.body, f)
			if err != nil {
				return err
			}
			out, err := render(res, renderOptions{yaml: yamlOut})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "response format: json or xml")
	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "output YAML instead of JSON")
	return cmd
}
