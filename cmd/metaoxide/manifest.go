package main

import (
	"github.com/spf13/cobra"

	"github.com/yfedoseev/meta-oxide/internal/metadata"
)

func (a *app) manifestCmd() *cobra.Command {
	var (
		baseURL string
		rawURL  string
		yamlOut bool
	)

	cmd := &cobra.Command{
		Use:   "manifest [file]",
		Short: "Parse a web app manifest",
		Long: `Parse a web app manifest file or URL. Relative URLs in the manifest
are resolved against --base-url, or the manifest URL when fetched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := source{name: "-"}
			switch {
			case rawURL != "":
				src = source{name: rawURL, isURL: true}
			case len(args) == 1:
				src = source{name: args[0]}
			}

			d, err := a.load(cmd.Context(), src, cmd.InOrStdin(), a.cfg.Extract.MaxBufferSize)
			if err != nil {
				return err
			}
			if baseURL == "" {
				baseURL = d.url
			}

			m, err := metadata.ParseManifest(d.body, baseURL)
			if err != nil {
				return err
			}
			out, err := render(m, renderOptions{yaml: yamlOut})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&baseURL, "base-url", "b", "", "base URL for relative links")
	cmd.Flags().StringVarP(&rawURL, "url", "u", "", "fetch the manifest from this URL")
	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "output YAML instead of JSON")
	return cmd
}
