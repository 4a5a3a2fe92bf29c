package provision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/diwise/satellite-image-api/internal/pkg/infrastructure/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDatabaseUnavailable marks conditions where the database is not (yet)
// reachable. Deployments must not be blocked by this, so the caller reports
// success with a diagnostic and lets a later deployment retry.
var ErrDatabaseUnavailable = errors.New("database unavailable")

const extensionName string = "postgis"

type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type ClustersAPI interface {
	DescribeDBClusters(ctx context.Context, params *rds.DescribeDBClustersInput, optFns ...func(*rds.Options)) (*rds.DescribeDBClustersOutput, error)
}

// ExtensionConn is the subset of a pgx connection the installer needs.
type ExtensionConn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Close(ctx context.Context) error
}

type ConnectFunc func(ctx context.Context, connStr string) (ExtensionConn, error)

type Installer struct {
	secrets  SecretsAPI
	clusters ClustersAPI
	connect  ConnectFunc

	secretARN    string
	dbName       string
	clusterMatch string
}

func NewInstaller(secrets SecretsAPI, clusters ClustersAPI, secretARN, dbName, clusterMatch string) *Installer {
	return &Installer{
		secrets:  secrets,
		clusters: clusters,
		connect: func(ctx context.Context, connStr string) (ExtensionConn, error) {
			return pgx.Connect(ctx, connStr)
		},
		secretARN:    secretARN,
		dbName:       dbName,
		clusterMatch: clusterMatch,
	}
}

type databaseCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// EnsureExtension makes sure the postgis extension is installed in the
// target database and returns the installed version. It is idempotent, an
// already present extension is not an error.
func (i *Installer) EnsureExtension(ctx context.Context) (map[string]string, error) {
	logger := logging.GetLoggerFromContext(ctx)

	creds, err := i.credentials(ctx)
	if err != nil {
		return nil, err
	}

	endpoint, err := i.clusterEndpoint(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info().Msgf("connecting to %s, database %s, user %s", endpoint, i.dbName, creds.Username)

	conn, err := i.connect(ctx, connStr(creds, endpoint, i.dbName))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDatabaseUnavailable, err.Error())
	}
	defer conn.Close(ctx)

	var name string
	err = conn.QueryRow(ctx, "SELECT extname FROM pg_extension WHERE extname = $1", extensionName).Scan(&name)
	if err == nil {
		logger.Info().Msg("extension is already installed")
	} else if errors.Is(err, pgx.ErrNoRows) {
		if _, err = conn.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS "+extensionName); err != nil {
			return nil, fmt.Errorf("failed to create extension: %w", err)
		}
		logger.Info().Msg("extension installed")
	} else {
		return nil, fmt.Errorf("failed to check for extension: %w", err)
	}

	var version string
	if err = conn.QueryRow(ctx, "SELECT PostGIS_Version()").Scan(&version); err != nil {
		return nil, fmt.Errorf("failed to read extension version: %w", err)
	}

	logger.Info().Msgf("postgis version %s", version)

	return map[string]string{"PostGISVersion": version}, nil
}

func (i *Installer) credentials(ctx context.Context) (databaseCredentials, error) {
	creds := databaseCredentials{}

	out, err := i.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(i.secretARN),
	})
	if err != nil {
		return creds, fmt.Errorf("failed to fetch database secret: %w", err)
	}

	if out.SecretString == nil {
		return creds, fmt.Errorf("database secret has no string value")
	}

	if err = json.Unmarshal([]byte(*out.SecretString), &creds); err != nil {
		return creds, fmt.Errorf("failed to unmarshal database secret: %w", err)
	}

	return creds, nil
}

func (i *Installer) clusterEndpoint(ctx context.Context) (string, error) {
	out, err := i.clusters.DescribeDBClusters(ctx, &rds.DescribeDBClustersInput{})
	if err != nil {
		return "", fmt.Errorf("failed to list database clusters: %w", err)
	}

	logger := logging.GetLoggerFromContext(ctx)

	for _, cluster := range out.DBClusters {
		identifier := aws.ToString(cluster.DBClusterIdentifier)
		logger.Debug().Msgf("found cluster %s", identifier)

		if strings.Contains(identifier, i.clusterMatch) {
			return aws.ToString(cluster.Endpoint), nil
		}
	}

	return "", fmt.Errorf("%w: no cluster matching %s found", ErrDatabaseUnavailable, i.clusterMatch)
}

func connStr(creds databaseCredentials, endpoint, dbName string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(creds.Username, creds.Password),
		Host:     endpoint + ":5432",
		Path:     "/" + dbName,
		RawQuery: "connect_timeout=10",
	}
	return u.String()
}
