package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/imagespy/driverimages/aggregate"
	"github.com/imagespy/driverimages/browser"
	"github.com/imagespy/driverimages/catalog"
	ilog "github.com/imagespy/driverimages/log"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "DRIVERIMAGES"

// app carries everything the commands share. The constructors are fields
// so tests can swap the provider and the terminal.
type app struct {
	browse     browseFunc
	cfgFile    string
	newCatalog func(s settings) (catalog.Catalog, error)
	settings   settings
	viper      *viper.Viper
}

func newApp() *app {
	return &app{
		browse: browser.Browse,
		newCatalog: func(s settings) (catalog.Catalog, error) {
			return catalog.NewEC2FromEnv(catalog.SessionOpts{
				Owners:  s.AWSOwners,
				Profile: s.AWSProfile,
				Region:  s.AWSRegion,
			})
		},
		viper: viper.New(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "driverimages",
		Short:         "Lists and deletes driver images and their snapshots",
		Long:          "driverimages inventories the machine images built for the language drivers, together with the EBS snapshots backing them.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.driverimages.yaml)")
	pf.String("log.level", "info", "set the log level")
	pf.String("aws.region", "", "the AWS region to query")
	pf.String("aws.profile", "", "the AWS profile to use from the shared config files")
	pf.StringSlice("aws.owners", nil, "only include images owned by these accounts")
	pf.Int("aggregate.workers", aggregate.DefaultWorkers, "number of snapshot lookups that run concurrently")
	pf.Duration("aggregate.timeout", aggregate.DefaultTimeout, "timeout of every single call to AWS")
	pf.String("metrics.pushgateway", "", "address of a prometheus pushgateway to push aggregation metrics to")
	err := a.viper.BindPFlags(pf)
	if err != nil {
		panic(err)
	}

	a.viper.SetEnvPrefix(envPrefix)
	a.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.viper.AutomaticEnv()

	rootCmd.AddCommand(newListCmd(a), newDeleteCmd(a), newShowCmd(a), newVersionCmd())
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	err := a.readConfig()
	if err != nil {
		return err
	}

	a.settings, err = newSettings(a.viper)
	if err != nil {
		return err
	}

	err = ilog.Init(a.settings.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return errors.Wrap(err, "initialising logging")
	}

	catalog.SetLog(log.StandardLogger())
	return nil
}

func (a *app) readConfig() error {
	if a.cfgFile != "" {
		a.viper.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}

		a.viper.AddConfigPath(home)
		a.viper.SetConfigName(".driverimages")
		a.viper.SetConfigType("yaml")
	}

	err := a.viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return errors.Wrap(err, "reading config")
	}

	return nil
}

func (a *app) aggregator(c catalog.Catalog) *aggregate.Aggregator {
	return aggregate.NewAggregator(c, aggregate.Opts{
		PushgatewayURL: a.settings.PushgatewayURL,
		Timeout:        a.settings.Timeout,
		Workers:        a.settings.Workers,
	})
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd(newApp()).ExecuteContext(ctx)
	if err != nil {
		log.Debug(ilog.FormatError(err))
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		stop()
		os.Exit(1)
	}
}
