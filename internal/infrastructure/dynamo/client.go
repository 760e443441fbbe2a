package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewClient creates a DynamoDB client. When endpoint is set (LocalStack),
// it overrides the endpoint so all traffic goes to the local instance.
func NewClient(awsCfg aws.Config, endpoint string) *dynamodb.Client {
	clientOpts := []func(*dynamodb.Options){}
	if endpoint != "" {
		clientOpts = append(clientOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}
	return dynamodb.NewFromConfig(awsCfg, clientOpts...)
}

// Tables holds the DynamoDB table name for each store.
type Tables struct {
	Identities string
	Tokens     string
	Sessions   string
	Users      string
}

// NewTables derives table names: identity provider tables are prefixed with the
// project id, document collections with the database id.
func NewTables(projectID, databaseID, usersCollection string) Tables {
	return Tables{
		Identities: projectID + "_identities",
		Tokens:     projectID + "_tokens",
		Sessions:   projectID + "_sessions",
		Users:      CollectionTable(databaseID, usersCollection),
	}
}

// CollectionTable maps a database/collection pair to its table name.
func CollectionTable(databaseID, collection string) string {
	return databaseID + "_" + collection
}
