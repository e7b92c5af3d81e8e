package auroradataapi

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPageSize = 1000

	clusterARNEnv = "AURORA_CLUSTER_ARN"
	secretARNEnv  = "AURORA_SECRET_ARN"
)

var (
	errInvalidDSNNoSlash = errors.New("invalid DSN: missing the slash separating the database name")
	errEmptyResourceARN  = errors.New("cluster resource ARN is empty")
	errEmptySecretARN    = errors.New("secret ARN is empty")
)

// Config is a set of connection parameters for the Data API, parsed from a DSN
// string or built directly by the caller.
type Config struct {
	ResourceARN string // Aurora cluster resource ARN
	SecretARN   string // Secrets Manager secret ARN holding the credentials
	Database    string // Database name
	Region      string // AWS region override (optional)

	Charset              string // session character set, set on every new cursor (optional)
	ContinueAfterTimeout bool   // keep the transaction usable when a statement times out
	PageSize             int    // records per page for auto-paginated queries. Default 1000

	// DataAPI overrides the client used to reach the service. When nil, a
	// client is built from the default AWS configuration chain.
	DataAPI DataAPI
}

// ParseDSN parses the DSN string to a Config.
//
// The DSN takes the form
//
//	<resource-arn>/<database>[?param1=value1&...&paramN=valueN]
//
// where the recognized parameters are secret_arn, region, charset,
// continue_after_timeout and page_size. The cluster resource ARN and the
// secret ARN fall back to the AURORA_CLUSTER_ARN and AURORA_SECRET_ARN
// environment variables when absent.
func ParseDSN(dsn string) (*Config, error) {
	cfg := &Config{
		PageSize: defaultPageSize,
	}

	i := strings.LastIndex(dsn, "/")
	if i < 0 {
		return nil, errInvalidDSNNoSlash
	}
	cfg.ResourceARN = dsn[:i]

	rest := dsn[i+1:]
	if j := strings.Index(rest, "?"); j >= 0 {
		if err := parseDSNParams(cfg, rest[j+1:]); err != nil {
			return nil, err
		}
		cfg.Database = rest[:j]
	} else {
		cfg.Database = rest
	}

	fillMissingConfigParameters(cfg)
	if cfg.ResourceARN == "" {
		return nil, errEmptyResourceARN
	}
	if cfg.SecretARN == "" {
		return nil, errEmptySecretARN
	}
	return cfg, nil
}

// parseDSNParams parses the DSN "query string". Values must be
// url.QueryEscape'd.
func parseDSNParams(cfg *Config, params string) error {
	for _, v := range strings.Split(params, "&") {
		param := strings.SplitN(v, "=", 2)
		if len(param) != 2 {
			continue
		}
		value, err := url.QueryUnescape(param[1])
		if err != nil {
			return fmt.Errorf("invalid DSN parameter %v: %w", param[0], err)
		}
		switch param[0] {
		case "secret_arn":
			cfg.SecretARN = value
		case "region":
			cfg.Region = value
		case "charset":
			cfg.Charset = value
		case "continue_after_timeout":
			cfg.ContinueAfterTimeout, err = strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid continue_after_timeout value: %v", value)
			}
		case "page_size":
			cfg.PageSize, err = strconv.Atoi(value)
			if err != nil || cfg.PageSize < 1 {
				return fmt.Errorf("invalid page_size value: %v", value)
			}
		}
	}
	return nil
}

func fillMissingConfigParameters(cfg *Config) {
	if cfg.ResourceARN == "" {
		cfg.ResourceARN = os.Getenv(clusterARNEnv)
	}
	if cfg.SecretARN == "" {
		cfg.SecretARN = os.Getenv(secretARNEnv)
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = defaultPageSize
	}
}

// DSN constructs a DSN string from the Config.
func DSN(cfg *Config) (string, error) {
	fillMissingConfigParameters(cfg)
	if cfg.ResourceARN == "" {
		return "", errEmptyResourceARN
	}
	if cfg.SecretARN == "" {
		return "", errEmptySecretARN
	}
	params := url.Values{}
	params.Add("secret_arn", cfg.SecretARN)
	if cfg.Region != "" {
		params.Add("region", cfg.Region)
	}
	if cfg.Charset != "" {
		params.Add("charset", cfg.Charset)
	}
	if cfg.ContinueAfterTimeout {
		params.Add("continue_after_timeout", "true")
	}
	if cfg.PageSize != defaultPageSize {
		params.Add("page_size", strconv.Itoa(cfg.PageSize))
	}
	return cfg.ResourceARN + "/" + cfg.Database + "?" + params.Encode(), nil
}
