package database

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"webux_bd/internal/infrastructure/config"
)

// ConnectDynamoDB creates a DynamoDB client from the loaded configuration.
// The endpoint override makes the client local-friendly
// (e.g. DYNAMODB_ENDPOINT=http://dynamodb:8000).
func ConnectDynamoDB(appCfg config.AWS) *dynamodb.Client {
	cfg, err := NewDynamoDBConfig(context.Background(), appCfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfig(ctx context.Context, appCfg config.AWS) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		appCfg.AccessKeyID,
		appCfg.SecretAccessKey,
		"",
	)

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(appCfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	}

	if appCfg.DynamoDBEndpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: appCfg.DynamoDBEndpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}
