package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/your-org/retail-store/internal/config"
	"github.com/your-org/retail-store/internal/domain/store"
	"github.com/your-org/retail-store/internal/pkg/i18n"
	"github.com/your-org/retail-store/internal/pkg/logger"
	"github.com/your-org/retail-store/internal/storage"
)

var (
	cfg    *config.Config
	log    *logrus.Logger
	stg    *storage.Storage
	labels *i18n.Translator

	dataDir    string
	fileName   string
	formatName string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "store",
		Short:         "Retail catalog, cart and order management",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.Storage.BaseDir = dataDir
			}
			log = logger.New(cfg)
			labels = i18n.ForLocale(cfg.App.Locale)
			stg, err = storage.New(cfg.Storage.BaseDir, log)
			return err
		},
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "base directory for store files (default $STORE_DATA_DIR or ./data)")
	root.PersistentFlags().StringVarP(&fileName, "file", "f", "", "store file name inside the data directory")
	root.PersistentFlags().StringVar(&formatName, "format", "json", "store file format: json, binary or xml")

	root.AddCommand(seedCmd(), listCmd(), checkoutCmd(), reportCmd(), convertCmd())
	return root.Execute()
}

// parseFormat maps a flag value to a storage format.
func parseFormat(name string) (storage.Format, error) {
	switch name {
	case "json":
		return storage.FormatJSON, nil
	case "binary", "bin":
		return storage.FormatBinary, nil
	case "xml":
		return storage.FormatXML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, binary or xml)", name)
}

// storeFile resolves the file name, falling back to the configured default
// for the chosen format.
func storeFile(format storage.Format) string {
	if fileName != "" {
		return fileName
	}
	switch format {
	case storage.FormatBinary:
		return cfg.Storage.DefaultBinFile
	case storage.FormatXML:
		return cfg.Storage.DefaultXMLFile
	}
	return cfg.Storage.DefaultJSONFile
}

// loadManager loads the current store state per the persistent flags.
func loadManager() (*store.Manager, storage.Format, string, error) {
	format, err := parseFormat(formatName)
	if err != nil {
		return nil, "", "", err
	}
	name := storeFile(format)
	m, err := stg.Load(format, name)
	if err != nil {
		return nil, "", "", err
	}
	return m, format, name, nil
}
