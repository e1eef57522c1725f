package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kedar1021/to-do-app/internal/infra/configfile"
)

func initCmd() *cobra.Command {
	var dir string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a todoprobe.yaml with default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid dir: %w", err)
			}

			written, err := configfile.NewInitializer().Init(root, force)
			if err != nil {
				return err
			}

			path := filepath.Join(root, configfile.FileName)
			if !written {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists (use --force to overwrite)\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	c.Flags().StringVar(&dir, "dir", ".", "Directory to write todoprobe.yaml into")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing todoprobe.yaml")
	return c
}
