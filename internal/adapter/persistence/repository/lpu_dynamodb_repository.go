package repository

import (
	"context"
	"strconv"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultLPUsTableName = "lpus"
	LPUQuoteTokenIndex   = "quote_token-index"
)

type invitedSupplierItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

type quotePermissionsItem struct {
	AllowQuantityChange bool `dynamodbav:"allow_quantity_change"`
	AllowAddItems       bool `dynamodbav:"allow_add_items"`
	AllowRemoveItems    bool `dynamodbav:"allow_remove_items"`
	AllowLPUEdit        bool `dynamodbav:"allow_lpu_edit"`
}

type submissionMetadataItem struct {
	SignerName     string `dynamodbav:"signer_name"`
	SubmissionDate string `dynamodbav:"submission_date"`
	SupplierName   string `dynamodbav:"supplier_name"`
	SupplierCNPJ   string `dynamodbav:"supplier_cnpj"`
}

type lpuRevisionItem struct {
	Prices             map[string]float64      `dynamodbav:"prices"`
	Quantities         map[string]float64      `dynamodbav:"quantities"`
	SubmissionMetadata *submissionMetadataItem `dynamodbav:"submission_metadata,omitempty"`
	CreatedAt          string                  `dynamodbav:"created_at"`
	RevisionNumber     int                     `dynamodbav:"revision_number"`
}

type lpuItem struct {
	ID        string `dynamodbav:"id"`
	WorkID    string `dynamodbav:"work_id"`
	LimitDate string `dynamodbav:"limit_date"`

	AllowQuantityChange bool `dynamodbav:"allow_quantity_change"`
	AllowAddItems       bool `dynamodbav:"allow_add_items"`
	AllowRemoveItems    bool `dynamodbav:"allow_remove_items"`
	AllowLPUEdit        bool `dynamodbav:"allow_lpu_edit"`

	Status           string                `dynamodbav:"status"`
	QuoteToken       string                `dynamodbav:"quote_token,omitempty"`
	InvitedSuppliers []invitedSupplierItem `dynamodbav:"invited_suppliers"`
	QuotePermissions *quotePermissionsItem `dynamodbav:"quote_permissions,omitempty"`
	SelectedItems    []string              `dynamodbav:"selected_items"`

	Prices             map[string]float64      `dynamodbav:"prices"`
	Quantities         map[string]float64      `dynamodbav:"quantities"`
	SubmissionMetadata *submissionMetadataItem `dynamodbav:"submission_metadata,omitempty"`
	RevisionComment    string                  `dynamodbav:"revision_comment,omitempty"`
	History            []lpuRevisionItem       `dynamodbav:"history"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// LPUDynamoRepository persists LPU entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_token-index (PK: quote_token, projection KEYS_ONLY or ALL)
//
// Writes after creation always replace the whole document and are conditioned on the
// version read by the caller. quote_token is omitted when empty so draft documents
// stay out of the index.
type LPUDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ILPURepository = (*LPUDynamoRepository)(nil)

func NewLPUDynamoRepository(ddb dynamoAPI, tableName string) *LPUDynamoRepository {
	if tableName == "" {
		tableName = DefaultLPUsTableName
	}
	return &LPUDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LPUDynamoRepository) Create(ctx context.Context, l entities.LPU) (entities.LPU, error) {
	l.Version = 1
	av, err := attributevalue.MarshalMap(toLPUItem(l))
	if err != nil {
		return entities.LPU{}, err
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
			return entities.LPU{}, interfaces.ErrAlreadyExists
		}
		return entities.LPU{}, err
	}
	return l, nil
}

func (r *LPUDynamoRepository) GetByID(ctx context.Context, id string) (entities.LPU, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LPU{}, err
	}
	if len(out.Item) == 0 {
		return entities.LPU{}, nil
	}

	var it lpuItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LPU{}, err
	}
	return fromLPUItem(it), nil
}

// FindByQuoteToken resolves the token through the GSI, then re-reads the document
// consistently so a token revoked a moment ago is not honoured.
func (r *LPUDynamoRepository) FindByQuoteToken(ctx context.Context, token string) (entities.LPU, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(LPUQuoteTokenIndex),
		KeyConditionExpression: aws.String("#quote_token = :token"),
		ExpressionAttributeNames: map[string]string{
			"#quote_token": "quote_token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.LPU{}, err
	}
	if len(out.Items) == 0 {
		return entities.LPU{}, nil
	}

	var key struct {
		ID string `dynamodbav:"id"`
	}
	if err := attributevalue.UnmarshalMap(out.Items[0], &key); err != nil {
		return entities.LPU{}, err
	}

	l, err := r.GetByID(ctx, key.ID)
	if err != nil {
		return entities.LPU{}, err
	}
	if l.QuoteToken != token {
		return entities.LPU{}, nil
	}
	return l, nil
}

func (r *LPUDynamoRepository) List(ctx context.Context) ([]entities.LPU, error) {
	items := make([]entities.LPU, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it lpuItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromLPUItem(it))
		}
	}
	return items, nil
}

// Save replaces the stored document if its version still equals expectedVersion.
// Documents written before versioning existed have no version attribute and match 0.
func (r *LPUDynamoRepository) Save(ctx context.Context, l entities.LPU, expectedVersion int64) (entities.LPU, error) {
	l.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toLPUItem(l))
	if err != nil {
		return entities.LPU{}, err
	}

	cond := "attribute_exists(#id) AND #version = :expected"
	if expectedVersion == 0 {
		cond = "attribute_exists(#id) AND (attribute_not_exists(#version) OR #version = :expected)"
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.LPU{}, interfaces.ErrVersionConflict
		}
		return entities.LPU{}, err
	}
	return l, nil
}

func (r *LPUDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toMetadataItem(m *entities.SubmissionMetadata) *submissionMetadataItem {
	if m == nil {
		return nil
	}
	date := ""
	if !m.SubmissionDate.IsZero() {
		date = m.SubmissionDate.UTC().Format(time.RFC3339)
	}
	return &submissionMetadataItem{
		SignerName:     m.SignerName,
		SubmissionDate: date,
		SupplierName:   m.SupplierName,
		SupplierCNPJ:   m.SupplierCNPJ,
	}
}

func fromMetadataItem(it *submissionMetadataItem) *entities.SubmissionMetadata {
	if it == nil {
		return nil
	}
	return &entities.SubmissionMetadata{
		SignerName:     it.SignerName,
		SubmissionDate: parseTime(it.SubmissionDate),
		SupplierName:   it.SupplierName,
		SupplierCNPJ:   it.SupplierCNPJ,
	}
}

func toLPUItem(l entities.LPU) lpuItem {
	it := lpuItem{
		ID:                  l.ID,
		WorkID:              l.WorkID,
		LimitDate:           l.LimitDate,
		AllowQuantityChange: l.AllowQuantityChange,
		AllowAddItems:       l.AllowAddItems,
		AllowRemoveItems:    l.AllowRemoveItems,
		AllowLPUEdit:        l.AllowLPUEdit,
		Status:              string(l.Status),
		QuoteToken:          l.QuoteToken,
		InvitedSuppliers:    make([]invitedSupplierItem, 0, len(l.InvitedSuppliers)),
		SelectedItems:       l.SelectedItems,
		Prices:              l.Prices,
		Quantities:          l.Quantities,
		SubmissionMetadata:  toMetadataItem(l.SubmissionMetadata),
		RevisionComment:     l.RevisionComment,
		History:             make([]lpuRevisionItem, 0, len(l.History)),
		Version:             l.Version,
		CreatedAt:           formatTime(l.CreatedAt),
		UpdatedAt:           formatTime(l.UpdatedAt),
	}
	if it.SelectedItems == nil {
		it.SelectedItems = []string{}
	}
	if it.Prices == nil {
		it.Prices = map[string]float64{}
	}
	if it.Quantities == nil {
		it.Quantities = map[string]float64{}
	}
	for _, s := range l.InvitedSuppliers {
		it.InvitedSuppliers = append(it.InvitedSuppliers, invitedSupplierItem{ID: s.ID, Name: s.Name})
	}
	if p := l.QuotePermissions; p != nil {
		it.QuotePermissions = &quotePermissionsItem{
			AllowQuantityChange: p.AllowQuantityChange,
			AllowAddItems:       p.AllowAddItems,
			AllowRemoveItems:    p.AllowRemoveItems,
			AllowLPUEdit:        p.AllowLPUEdit,
		}
	}
	for _, rev := range l.History {
		it.History = append(it.History, lpuRevisionItem{
			Prices:             rev.Prices,
			Quantities:         rev.Quantities,
			SubmissionMetadata: toMetadataItem(rev.SubmissionMetadata),
			CreatedAt:          formatTime(rev.CreatedAt),
			RevisionNumber:     rev.RevisionNumber,
		})
	}
	return it
}

func fromLPUItem(it lpuItem) entities.LPU {
	l := entities.LPU{
		ID:                  it.ID,
		WorkID:              it.WorkID,
		LimitDate:           it.LimitDate,
		AllowQuantityChange: it.AllowQuantityChange,
		AllowAddItems:       it.AllowAddItems,
		AllowRemoveItems:    it.AllowRemoveItems,
		AllowLPUEdit:        it.AllowLPUEdit,
		Status:              entities.LPUStatus(it.Status),
		QuoteToken:          it.QuoteToken,
		InvitedSuppliers:    make([]entities.InvitedSupplier, 0, len(it.InvitedSuppliers)),
		SelectedItems:       it.SelectedItems,
		Prices:              it.Prices,
		Quantities:          it.Quantities,
		SubmissionMetadata:  fromMetadataItem(it.SubmissionMetadata),
		RevisionComment:     it.RevisionComment,
		History:             make([]entities.LPURevision, 0, len(it.History)),
		Version:             it.Version,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
	if l.SelectedItems == nil {
		l.SelectedItems = []string{}
	}
	if l.Prices == nil {
		l.Prices = map[string]float64{}
	}
	if l.Quantities == nil {
		l.Quantities = map[string]float64{}
	}
	for _, s := range it.InvitedSuppliers {
		l.InvitedSuppliers = append(l.InvitedSuppliers, entities.InvitedSupplier{ID: s.ID, Name: s.Name})
	}
	if p := it.QuotePermissions; p != nil {
		l.QuotePermissions = &entities.QuotePermissions{
			AllowQuantityChange: p.AllowQuantityChange,
			AllowAddItems:       p.AllowAddItems,
			AllowRemoveItems:    p.AllowRemoveItems,
			AllowLPUEdit:        p.AllowLPUEdit,
		}
	}
	for _, rev := range it.History {
		l.History = append(l.History, entities.LPURevision{
			Prices:             rev.Prices,
			Quantities:         rev.Quantities,
			SubmissionMetadata: fromMetadataItem(rev.SubmissionMetadata),
			CreatedAt:          parseTime(rev.CreatedAt),
			RevisionNumber:     rev.RevisionNumber,
		})
	}
	return l
}
