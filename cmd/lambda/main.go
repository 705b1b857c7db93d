// Lambda entrypoint: the same gin router served through API Gateway.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"github.com/luk14236/food-advice-agent/config"
	"github.com/luk14236/food-advice-agent/routes"
)

var adapter *ginadapter.GinLambdaV2

// init runs once per warm execution context, so the DB pool is reused
// across invocations.
func init() {
	config.InitDB()
	adapter = ginadapter.NewV2(routes.SetupRouter(config.DB))
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
