package database

import (
	"context"
	"log"

	appconfig "casamento_pe/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the resolved configuration.
// Pointing Endpoint at a local DynamoDB (e.g. http://dynamodb:8000) works
// for development; local DynamoDB ignores credentials but the SDK still
// requires them, hence the static provider.
func ConnectDynamoDB(dbCfg appconfig.DatabaseConfig) *dynamodb.Client {
	cfg, err := newAWSConfig(context.Background(), dbCfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func newAWSConfig(ctx context.Context, dbCfg appconfig.DatabaseConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(dbCfg.AccessKeyID, dbCfg.SecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(dbCfg.Region),
		config.WithCredentialsProvider(creds),
	}

	if dbCfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: dbCfg.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
