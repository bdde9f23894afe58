package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// convert: load the store in one format and save it in another. Converting
// through xml drops payment, contact and exact timestamps; that is a
// property of the xml format itself.
func convertCmd() *cobra.Command {
	var (
		outName   string
		outFormat string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-encode the store file into another format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, _, err := loadManager()
			if err != nil {
				return err
			}

			target, err := parseFormat(outFormat)
			if err != nil {
				return err
			}
			name := outName
			if name == "" {
				name = storeFile(target)
			}

			path, err := stg.Save(m, target, name)
			if err != nil {
				return err
			}
			fmt.Println(fmt.Sprintf(labels.T("data_saved"), path))
			return nil
		},
	}

	cmd.Flags().StringVar(&outName, "out", "", "output file name (default per-format)")
	cmd.Flags().StringVar(&outFormat, "out-format", "binary", "output format: json, binary or xml")
	return cmd
}
