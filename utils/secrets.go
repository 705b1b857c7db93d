// utils/secrets.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

var smClient *secretsmanager.Client

// InitSecretsManager must be called once before any secret is read
// (lazily done by SecretsClient otherwise).
func InitSecretsManager() {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("Unable to load AWS config for Secrets Manager: %v", err)
	}
	smClient = secretsmanager.NewFromConfig(cfg)
}

// SecretsClient returns the initialized Secrets Manager client
func SecretsClient() *secretsmanager.Client {
	if smClient == nil {
		InitSecretsManager()
	}
	return smClient
}

// GetSecretJSON fetches a secret whose value is a flat JSON object and
// returns it with every value rendered as a string (ports arrive as numbers).
func GetSecretJSON(ctx context.Context, secretID string) (map[string]string, error) {
	out, err := SecretsClient().GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read secret %s: %w", secretID, err)
	}

	raw := map[string]any{}
	if err := json.Unmarshal([]byte(aws.ToString(out.SecretString)), &raw); err != nil {
		return nil, fmt.Errorf("secret %s is not a JSON object: %w", secretID, err)
	}

	vals := make(map[string]string, len(raw))
	for k, v := range raw {
		vals[k] = fmt.Sprint(v)
	}
	return vals, nil
}
