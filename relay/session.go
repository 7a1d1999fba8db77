package relay

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/pkg/errors"
)

// awsConfig builds the sdk config from the relay settings. Empty settings are
// left to the sdk's default resolution chain.
func awsConfig(cfg *Config) *aws.Config {
	c := aws.NewConfig()

	if cfg.Region != "" {
		c = c.WithRegion(cfg.Region)
	}

	if cfg.Endpoint != "" {
		c = c.WithEndpoint(cfg.Endpoint)
	}

	return c
}

// NewSession returns an aws session for the configured region and endpoint.
// It is meant to be created once per process and shared by every invocation.
func NewSession(cfg *Config) (*session.Session, error) {
	s, err := session.NewSession(awsConfig(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "failed getting session")
	}

	return s, nil
}

// NewHandlerFromConfig wires a Handler with an sqs client built from cfg.
func NewHandlerFromConfig(cfg *Config, logger Logger) (*Handler, error) {
	s, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}

	return NewHandler(cfg, sqs.New(s), logger), nil
}
