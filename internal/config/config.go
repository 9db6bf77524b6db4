package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	ethNodeEnvKey      = "ETH_NODE_URL"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	jwtSecretEnvKey    = "JWT_SECRET"
	tenderlyAPIEnvKey  = "TENDERLY_API_URL"
	dashboardURLEnvKey = "TENDERLY_DASHBOARD_URL"
)

const (
	defaultTenderlyAPIURL = "https://api.tenderly.co/api/v1"
	defaultDashboardURL   = "https://dashboard.tenderly.co"
)

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	TenderlyAPIURL  string
	DashboardURL    string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	apiURL, ok := os.LookupEnv(tenderlyAPIEnvKey)
	if !ok {
		apiURL = defaultTenderlyAPIURL
	}

	dashboardURL, ok := os.LookupEnv(dashboardURLEnvKey)
	if !ok {
		dashboardURL = defaultDashboardURL
	}

	return App{
		Port:            port,
		NodeURL:         nodeURL,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		TenderlyAPIURL:  apiURL,
		DashboardURL:    dashboardURL,
	}, nil
}
