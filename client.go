package auroradataapi

import (
	"context"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
)

// DataAPI is the subset of the RDS Data API service client used by the
// driver. *rdsdata.Client satisfies it; tests and callers may substitute
// their own implementation through Config.DataAPI.
type DataAPI interface {
	BeginTransaction(ctx context.Context, params *rdsdata.BeginTransactionInput, optFns ...func(*rdsdata.Options)) (*rdsdata.BeginTransactionOutput, error)
	CommitTransaction(ctx context.Context, params *rdsdata.CommitTransactionInput, optFns ...func(*rdsdata.Options)) (*rdsdata.CommitTransactionOutput, error)
	RollbackTransaction(ctx context.Context, params *rdsdata.RollbackTransactionInput, optFns ...func(*rdsdata.Options)) (*rdsdata.RollbackTransactionOutput, error)
	ExecuteStatement(ctx context.Context, params *rdsdata.ExecuteStatementInput, optFns ...func(*rdsdata.Options)) (*rdsdata.ExecuteStatementOutput, error)
	BatchExecuteStatement(ctx context.Context, params *rdsdata.BatchExecuteStatementInput, optFns ...func(*rdsdata.Options)) (*rdsdata.BatchExecuteStatementOutput, error)
}

// clientInitLock guards default client construction so that concurrently
// opened connections do not race on the shared AWS configuration chain.
var clientInitLock sync.Mutex

func newDataAPIClient(ctx context.Context, cfg *Config) (DataAPI, error) {
	if cfg.DataAPI != nil {
		return cfg.DataAPI, nil
	}
	clientInitLock.Lock()
	defer clientInitLock.Unlock()

	var optFns []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		optFns = append(optFns, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, err
	}
	return rdsdata.NewFromConfig(awsCfg), nil
}
