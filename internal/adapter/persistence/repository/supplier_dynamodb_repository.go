package repository

import (
	"context"
	"fmt"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultSuppliersTableName = "suppliers"

	// BatchGetItem accepts at most 100 keys per call.
	batchGetMaxKeys     = 100
	batchGetMaxAttempts = 5
	batchGetBaseBackoff = 50 * time.Millisecond
)

type supplierItem struct {
	ID                  string `dynamodbav:"id"`
	SocialReason        string `dynamodbav:"social_reason"`
	CNPJ                string `dynamodbav:"cnpj"`
	ContractStart       string `dynamodbav:"contract_start"`
	ContractEnd         string `dynamodbav:"contract_end"`
	Project             string `dynamodbav:"project"`
	HiringType          string `dynamodbav:"hiring_type"`
	Headquarters        string `dynamodbav:"headquarters"`
	LegalRepresentative string `dynamodbav:"legal_representative"`
	RepresentativeEmail string `dynamodbav:"representative_email"`
	Contact             string `dynamodbav:"contact"`
	Witness             string `dynamodbav:"witness"`
	WitnessEmail        string `dynamodbav:"witness_email"`
	Observations        string `dynamodbav:"observations"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// SupplierDynamoRepository persists Supplier entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type SupplierDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	sleep     func(context.Context, time.Duration) error
}

var _ interfaces.ISupplierRepository = (*SupplierDynamoRepository)(nil)

func NewSupplierDynamoRepository(ddb dynamoAPI, tableName string) *SupplierDynamoRepository {
	if tableName == "" {
		tableName = DefaultSuppliersTableName
	}
	return &SupplierDynamoRepository{ddb: ddb, tableName: tableName, sleep: sleepCtx}
}

func (r *SupplierDynamoRepository) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	av, err := attributevalue.MarshalMap(toSupplierItem(s))
	if err != nil {
		return entities.Supplier{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Supplier{}, interfaces.ErrAlreadyExists
		}
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierDynamoRepository) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Supplier{}, err
	}
	if len(out.Item) == 0 {
		return entities.Supplier{}, nil
	}

	var it supplierItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Supplier{}, err
	}
	return fromSupplierItem(it), nil
}

// GetByIDs reads the given suppliers with BatchGetItem, chunked and retrying
// unprocessed keys with exponential backoff. Duplicate ids are collapsed since
// DynamoDB rejects them.
func (r *SupplierDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Supplier, error) {
	seen := make(map[string]struct{}, len(ids))
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, idKey(id))
	}

	out := make([]entities.Supplier, 0, len(keys))
	for start := 0; start < len(keys); start += batchGetMaxKeys {
		end := min(start+batchGetMaxKeys, len(keys))
		found, err := r.batchGet(ctx, keys[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func (r *SupplierDynamoRepository) batchGet(ctx context.Context, keys []map[string]types.AttributeValue) ([]entities.Supplier, error) {
	request := map[string]types.KeysAndAttributes{
		r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
	}

	var out []entities.Supplier
	for attempt := 0; len(request) > 0; attempt++ {
		if attempt == batchGetMaxAttempts {
			return nil, fmt.Errorf("batch get suppliers: unprocessed keys after %d attempts", attempt)
		}
		if attempt > 0 {
			if err := r.sleep(ctx, batchGetBaseBackoff<<(attempt-1)); err != nil {
				return nil, err
			}
		}
		resp, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return nil, err
		}
		for _, raw := range resp.Responses[r.tableName] {
			var it supplierItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromSupplierItem(it))
		}
		request = resp.UnprocessedKeys
	}
	return out, nil
}

func (r *SupplierDynamoRepository) List(ctx context.Context) ([]entities.Supplier, error) {
	items := make([]entities.Supplier, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it supplierItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromSupplierItem(it))
		}
	}
	return items, nil
}

// Update overwrites every registry field but keeps created_at.
func (r *SupplierDynamoRepository) Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	it := toSupplierItem(s)
	fields := []struct {
		name  string
		value string
	}{
		{"social_reason", it.SocialReason},
		{"cnpj", it.CNPJ},
		{"contract_start", it.ContractStart},
		{"contract_end", it.ContractEnd},
		{"project", it.Project},
		{"hiring_type", it.HiringType},
		{"headquarters", it.Headquarters},
		{"legal_representative", it.LegalRepresentative},
		{"representative_email", it.RepresentativeEmail},
		{"contact", it.Contact},
		{"witness", it.Witness},
		{"witness_email", it.WitnessEmail},
		{"observations", it.Observations},
		{"updated_at", it.UpdatedAt},
	}

	expr := "SET "
	names := make(map[string]string, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	for i, f := range fields {
		if i > 0 {
			expr += ", "
		}
		expr += fmt.Sprintf("#%s = :%s", f.name, f.name)
		names["#"+f.name] = f.name
		values[":"+f.name] = &types.AttributeValueMemberS{Value: f.value}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(s.ID),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Supplier{}, nil
		}
		return entities.Supplier{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Supplier{}, nil
	}

	var updated supplierItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.Supplier{}, err
	}
	return fromSupplierItem(updated), nil
}

func (r *SupplierDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toSupplierItem(s entities.Supplier) supplierItem {
	return supplierItem{
		ID:                  s.ID,
		SocialReason:        s.SocialReason,
		CNPJ:                s.CNPJ,
		ContractStart:       s.ContractStart,
		ContractEnd:         s.ContractEnd,
		Project:             s.Project,
		HiringType:          s.HiringType,
		Headquarters:        s.Headquarters,
		LegalRepresentative: s.LegalRepresentative,
		RepresentativeEmail: s.RepresentativeEmail,
		Contact:             s.Contact,
		Witness:             s.Witness,
		WitnessEmail:        s.WitnessEmail,
		Observations:        s.Observations,
		CreatedAt:           formatTime(s.CreatedAt),
		UpdatedAt:           formatTime(s.UpdatedAt),
	}
}

func fromSupplierItem(it supplierItem) entities.Supplier {
	return entities.Supplier{
		ID:                  it.ID,
		SocialReason:        it.SocialReason,
		CNPJ:                it.CNPJ,
		ContractStart:       it.ContractStart,
		ContractEnd:         it.ContractEnd,
		Project:             it.Project,
		HiringType:          it.HiringType,
		Headquarters:        it.Headquarters,
		LegalRepresentative: it.LegalRepresentative,
		RepresentativeEmail: it.RepresentativeEmail,
		Contact:             it.Contact,
		Witness:             it.Witness,
		WitnessEmail:        it.WitnessEmail,
		Observations:        it.Observations,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
