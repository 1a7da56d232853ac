package catalog

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// SessionOpts configure the AWS session. Empty values fall back to the
// shared config files and the environment.
type SessionOpts struct {
	Owners  []string
	Profile string
	Region  string
}

// NewEC2FromEnv creates an EC2 catalog with credentials loaded the same way
// the AWS CLI does.
func NewEC2FromEnv(o SessionOpts) (*EC2, error) {
	cfg := aws.Config{}
	if o.Region != "" {
		cfg.Region = aws.String(o.Region)
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            cfg,
		Profile:           o.Profile,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, err
	}

	return NewEC2(ec2.New(sess), o.Owners), nil
}
