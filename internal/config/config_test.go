// Package config provides configuration management for the Prop Parlay application.
package config

import (
	"os"
	"testing"
)

const (
	validConfigPath              = "testdata/valid_config.yaml"
	expansionConfigPath          = "testdata/expansion_config.yaml"
	nonexistentConfigPath        = "testdata/nonexistent_config.yaml"
	expectedNoErrorLoadingConfig = "expected no error loading config, got %v"
	expectedNoErrorMsg           = "expected no error, got %v"
	expectedNonNilConfig         = "expected non-nil config"
	propParlayName               = "prop-parlay"
	developmentEnv               = "development"
	invalidEnv                   = "invalid"
	testAppName                  = "test-app"
	testFeedAPIKey               = "TEST_FEED_API_KEY"
	expandedSecretValue          = "expanded_secret_value"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg == nil {
		t.Fatal(expectedNonNilConfig)
	}

	if cfg.App.Name != propParlayName {
		t.Errorf("expected app name '%s', got '%s'", propParlayName, cfg.App.Name)
	}

	if cfg.App.Environment != developmentEnv {
		t.Errorf("expected environment '%s', got '%s'", developmentEnv, cfg.App.Environment)
	}

	if cfg.StatsFeed.BaseURL != "http://localhost:9000" {
		t.Errorf("expected stats feed base url 'http://localhost:9000', got '%s'", cfg.StatsFeed.BaseURL)
	}

	if cfg.API.Port != 8080 {
		t.Errorf("expected api port 8080, got %d", cfg.API.Port)
	}
}

// TestLoadConfigFileNotFound tests handling of missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load(nonexistentConfigPath)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadConfigEnvironmentVariables tests environment variable override
func TestLoadConfigEnvironmentVariables(t *testing.T) {
	os.Setenv("PROP_PARLAY_APP_NAME", testAppName)
	defer os.Unsetenv("PROP_PARLAY_APP_NAME")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Name != testAppName {
		t.Errorf("expected app name '%s' from environment, got '%s'", testAppName, cfg.App.Name)
	}
}

// TestLoadWithDefaults tests loading defaults when no config file is present
func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Environment != developmentEnv {
		t.Errorf("expected default environment '%s', got '%s'", developmentEnv, cfg.App.Environment)
	}

	if cfg.Engine.DefaultStake != 25.0 {
		t.Errorf("expected default stake 25.0, got %f", cfg.Engine.DefaultStake)
	}

	if cfg.Scheduler.RefreshSchedule != "*/5 * * * *" {
		t.Errorf("expected default refresh schedule '*/5 * * * *', got '%s'", cfg.Scheduler.RefreshSchedule)
	}
}

// TestValidateSuccess tests validation of a valid configuration
func TestValidateSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	err = Validate(cfg)
	if err != nil {
		t.Fatalf("expected no validation error, got %v", err)
	}
}

// TestValidateInvalidEnvironment tests validation of invalid environment
func TestValidateInvalidEnvironment(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.Environment = invalidEnv
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid environment")
	}
}

// TestValidateInvalidLogLevel tests validation of invalid log level
func TestValidateInvalidLogLevel(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.LogLevel = "verbose"
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid log level")
	}
}

// TestValidateStakeOrdering tests the default/max stake cross-field rule
func TestValidateStakeOrdering(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Engine.DefaultStake = 5000.0
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error when default_stake exceeds max_stake")
	}
}

// TestValidateInvalidCronSchedule tests rejection of unparseable schedules
func TestValidateInvalidCronSchedule(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Scheduler.RefreshSchedule = "every five minutes"
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid cron schedule")
	}
}

// TestValidatePortCollision tests that the API and health ports must differ
func TestValidatePortCollision(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Health.Port = cfg.API.Port
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for colliding ports")
	}
}

// TestValidateProductionRequiresAPIKey tests production credential requirements
func TestValidateProductionRequiresAPIKey(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.Environment = "production"
	cfg.StatsFeed.APIKey = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for missing API key in production")
	}

	cfg.StatsFeed.APIKey = "test-key-123"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for test API key in production")
	}

	cfg.StatsFeed.APIKey = "pk_live_8f3a9c"
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected no validation error with real-looking key, got %v", err)
	}
}

// TestIsDevelopment tests environment check function
func TestIsDevelopment(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: developmentEnv},
	}

	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return true")
	}

	if cfg.IsProduction() {
		t.Error("expected IsProduction() to return false")
	}
}

// TestIsProduction tests production environment check
func TestIsProduction(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "production"},
	}

	if !cfg.IsProduction() {
		t.Error("expected IsProduction() to return true")
	}

	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return false")
	}
}

// TestIsStaging tests staging environment check
func TestIsStaging(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "staging"},
	}

	if !cfg.IsStaging() {
		t.Error("expected IsStaging() to return true")
	}

	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return false")
	}
}

// TestDurationHelpers tests the duration accessor methods
func TestDurationHelpers(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	if cfg.FeedTimeout().Seconds() != 10 {
		t.Errorf("expected 10s feed timeout, got %v", cfg.FeedTimeout())
	}

	if cfg.SlateCacheTTL().Seconds() != 300 {
		t.Errorf("expected 300s cache TTL, got %v", cfg.SlateCacheTTL())
	}

	if cfg.APIAddress() != ":8080" {
		t.Errorf("expected api address ':8080', got '%s'", cfg.APIAddress())
	}
}

// TestLoadConfigEnvironmentVariableExpansion tests environment variable expansion in config file
func TestLoadConfigEnvironmentVariableExpansion(t *testing.T) {
	os.Setenv(testFeedAPIKey, expandedSecretValue)
	defer os.Unsetenv(testFeedAPIKey)

	cfg, err := Load(expansionConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config with expansion, got %v", err)
	}

	if cfg.StatsFeed.APIKey != expandedSecretValue {
		t.Errorf("expected api key '%s' from environment expansion, got '%s'", expandedSecretValue, cfg.StatsFeed.APIKey)
	}
}

// TestOverlaySecrets tests overlaying fetched secrets onto the configuration
func TestOverlaySecrets(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	overlaySecretsOnConfig(cfg, &SecretsOverlay{StatsFeedAPIKey: "from-secrets-manager"})
	if cfg.StatsFeed.APIKey != "from-secrets-manager" {
		t.Errorf("expected overlaid api key, got '%s'", cfg.StatsFeed.APIKey)
	}

	// Empty secret values must not clobber existing configuration
	overlaySecretsOnConfig(cfg, &SecretsOverlay{})
	if cfg.StatsFeed.APIKey != "from-secrets-manager" {
		t.Errorf("expected api key preserved, got '%s'", cfg.StatsFeed.APIKey)
	}
}
