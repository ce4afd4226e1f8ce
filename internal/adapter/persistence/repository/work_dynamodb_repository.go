package repository

import (
	"context"

	"gestao_obras/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const DefaultWorksTableName = "works"

// WorkDynamoRepository only answers whether a work exists. The works table is owned
// by the project registry; this service never writes to it.
type WorkDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IWorkRepository = (*WorkDynamoRepository)(nil)

func NewWorkDynamoRepository(ddb dynamoAPI, tableName string) *WorkDynamoRepository {
	if tableName == "" {
		tableName = DefaultWorksTableName
	}
	return &WorkDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkDynamoRepository) Exists(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.tableName),
		Key:                  idKey(id),
		ProjectionExpression: aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}
