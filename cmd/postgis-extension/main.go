package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/diwise/satellite-image-api/internal/pkg/infrastructure/logging"
	"github.com/diwise/satellite-image-api/internal/pkg/provision"
)

const functionName string = "postgis-extension"

var installer *provision.Installer
var sender *provision.CallbackSender

func init() {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load aws configuration: %s\n", err.Error())
		os.Exit(1)
	}

	installer = provision.NewInstaller(
		secretsmanager.NewFromConfig(cfg),
		rds.NewFromConfig(cfg),
		os.Getenv("DB_SECRET_ARN"),
		os.Getenv("DB_NAME"),
		envOrDefault("DB_CLUSTER_MATCH", "SatelliteImageDb"),
	)
	sender = provision.NewCallbackSender()
}

func main() {
	lambda.Start(handler)
}

func handler(ctx context.Context, event cfn.Event) error {
	ctx, logger := logging.NewLogger(ctx, functionName, lambdacontext.FunctionVersion)

	logger.Info().Msgf("received %s request for resource %s", event.RequestType, event.LogicalResourceID)

	physicalResourceID := event.PhysicalResourceID
	if physicalResourceID == "" {
		physicalResourceID = functionName + "-" + lambdacontext.FunctionName
	}

	reason := fmt.Sprintf("see CloudWatch logs %s %s for details", lambdacontext.LogGroupName, lambdacontext.LogStreamName)

	// nothing to clean up, the extension stays with the database
	if event.RequestType == cfn.RequestDelete {
		return sender.Send(ctx, event, provision.StatusSuccess, reason, physicalResourceID, nil)
	}

	data, err := installer.EnsureExtension(ctx)

	if errors.Is(err, provision.ErrDatabaseUnavailable) {
		logger.Warn().Err(err).Msg("database unavailable, reporting success so the deployment can proceed")
		diag := map[string]string{"Status": "database unavailable, will retry on next deployment"}
		return sender.Send(ctx, event, provision.StatusSuccess, reason, physicalResourceID, diag)
	}

	if err != nil {
		logger.Error().Err(err).Msg("failed to ensure extension")
		return sender.Send(ctx, event, provision.StatusFailed, reason, physicalResourceID, map[string]string{"Error": err.Error()})
	}

	return sender.Send(ctx, event, provision.StatusSuccess, reason, physicalResourceID, data)
}

func envOrDefault(name, defaultValue string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return defaultValue
}
