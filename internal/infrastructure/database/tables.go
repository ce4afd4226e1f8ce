package database

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

const tableReadyTimeout = 2 * time.Minute

type tableAPI interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// TableNames groups the tables this service reads or writes.
type TableNames struct {
	LPUs          string
	Suppliers     string
	Works         string
	QuoteTokenGSI string
}

// TableDefinitions describes the tables as created for local development. Production
// tables are provisioned outside the service with the same keys.
func TableDefinitions(names TableNames) []*dynamodb.CreateTableInput {
	idOnly := func(name string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:   aws.String(name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
		}
	}

	lpus := idOnly(names.LPUs)
	lpus.AttributeDefinitions = append(lpus.AttributeDefinitions,
		types.AttributeDefinition{AttributeName: aws.String("quote_token"), AttributeType: types.ScalarAttributeTypeS})
	lpus.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
		IndexName: aws.String(names.QuoteTokenGSI),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("quote_token"), KeyType: types.KeyTypeHash},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeKeysOnly},
	}}

	return []*dynamodb.CreateTableInput{lpus, idOnly(names.Suppliers), idOnly(names.Works)}
}

// EnsureTables creates any missing table and waits until all of them are active.
func EnsureTables(ctx context.Context, ddb tableAPI, names TableNames) error {
	for _, def := range TableDefinitions(names) {
		name := aws.ToString(def.TableName)
		_, err := ddb.CreateTable(ctx, def)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			logrus.Infof("[database][dynamodb] table created table=%s", name)
		case errors.As(err, &inUse):
			logrus.Debugf("[database][dynamodb] table already exists table=%s", name)
		default:
			return err
		}

		waiter := dynamodb.NewTableExistsWaiter(ddb, func(o *dynamodb.TableExistsWaiterOptions) {
			o.MinDelay = 500 * time.Millisecond
			o.MaxDelay = 5 * time.Second
		})
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, tableReadyTimeout); err != nil {
			return err
		}
	}
	return nil
}
