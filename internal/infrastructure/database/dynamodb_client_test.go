package database

import (
	"context"
	"testing"

	appconfig "mecanica_workflow/internal/infrastructure/config"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), appconfig.DynamoDB{
		Region:          "us-east-2",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "us-east-2" {
		t.Fatalf("expected region us-east-2, got %s", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("expected static local credentials, got %+v err=%v", creds, err)
	}
}

func TestConnectRedis_DisabledWithoutAddr(t *testing.T) {
	if rdb := ConnectRedis(appconfig.Redis{}); rdb != nil {
		t.Fatalf("expected nil client without REDIS_ADDR")
	}
}
