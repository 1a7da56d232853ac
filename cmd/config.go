package cmd

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type settings struct {
	AWSOwners      []string
	AWSProfile     string
	AWSRegion      string
	LogLevel       string
	PushgatewayURL string
	Timeout        time.Duration
	Workers        int
}

func newSettings(v *viper.Viper) (settings, error) {
	s := settings{
		AWSOwners:      v.GetStringSlice("aws.owners"),
		AWSProfile:     v.GetString("aws.profile"),
		AWSRegion:      v.GetString("aws.region"),
		LogLevel:       v.GetString("log.level"),
		PushgatewayURL: v.GetString("metrics.pushgateway"),
		Timeout:        v.GetDuration("aggregate.timeout"),
		Workers:        v.GetInt("aggregate.workers"),
	}
	if s.Workers < 1 {
		return settings{}, errors.Errorf("aggregate.workers must be at least 1, got %d", s.Workers)
	}

	if s.Timeout <= 0 {
		return settings{}, errors.Errorf("aggregate.timeout must be positive, got %s", s.Timeout)
	}

	return s, nil
}
