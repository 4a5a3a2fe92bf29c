package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/diwise/satellite-image-api/internal/pkg/application/imagery"
	"github.com/diwise/satellite-image-api/internal/pkg/application/points"
	"github.com/diwise/satellite-image-api/internal/pkg/infrastructure/logging"
	"github.com/diwise/satellite-image-api/internal/pkg/infrastructure/router"
	"github.com/diwise/satellite-image-api/internal/pkg/infrastructure/storage"
	"github.com/diwise/satellite-image-api/internal/pkg/infrastructure/tracing"
	"github.com/diwise/satellite-image-api/internal/pkg/presentation/api"
	"github.com/rs/zerolog"
)

const serviceName string = "satellite-image-api"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
	databaseURL

	corsOrigins
	catalogURL
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		dbHost:      "localhost",
		dbUser:      "postgres",
		dbPassword:  "",
		dbPort:      "5432",
		dbName:      "satellite_image_db",
		dbSSLMode:   "disable",
		databaseURL: "",

		corsOrigins: "*",
		catalogURL:  imagery.DefaultCatalogURL,
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := version()
	ctx, logger := logging.NewLogger(ctx, serviceName, serviceVersion)

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	exitIf(err, logger, "failed to init tracing")
	defer cleanup()

	s := storage.New(ctx, storageConfig(flags))
	defer s.Close()

	registry := points.New(s)
	locator := imagery.NewLocator(flags[catalogURL])
	renderer := imagery.NewRenderer()

	r := router.New(serviceName, originAllowList(flags[corsOrigins]))
	api.RegisterHandlers(logger, r, registry, locator, renderer)

	apiAddress := flags[listenAddress] + ":" + flags[servicePort]
	logger.Info().Msgf("starting to listen for connections on %s", apiAddress)

	err = http.ListenAndServe(apiAddress, r)
	exitIf(err, logger, "failed to start request router")
}

func storageConfig(flags flagMap) storage.Config {
	if flags[databaseURL] != "" {
		return storage.NewConfigFromConnStr(flags[databaseURL])
	}

	return storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword],
		flags[dbPort], flags[dbName], flags[dbSSLMode],
	)
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := envOrDefault

	flags[listenAddress] = envOrDef("LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef("SERVICE_PORT", flags[servicePort])

	flags[dbHost] = envOrDef("POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef("POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef("POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef("POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef("POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef("POSTGRES_SSLMODE", flags[dbSSLMode])
	flags[databaseURL] = envOrDef("DATABASE_URL", flags[databaseURL])

	flags[corsOrigins] = envOrDef("CORS_ORIGINS", flags[corsOrigins])
	flags[catalogURL] = envOrDef("STAC_CATALOG_URL", flags[catalogURL])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("port", "service listener port", apply(servicePort))
	flag.Func("origins", "comma separated cors origin allow-list", apply(corsOrigins))
	flag.Func("catalog", "imagery catalog items endpoint", apply(catalogURL))
	flag.Parse()

	return ctx, flags
}

func originAllowList(origins string) []string {
	list := []string{}

	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			list = append(list, o)
		}
	}

	return list
}

func envOrDefault(name, defaultValue string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return defaultValue
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	infoMap := map[string]string{}
	for _, s := range buildInfo.Settings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	if sha == "" {
		return "unknown"
	}

	return sha
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Error().Err(err).Msg(msg)
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
