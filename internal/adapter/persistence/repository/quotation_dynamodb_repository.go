package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"muebleria_xpto/internal/domain/entities"
	"muebleria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "quotations"

type quotationLineItem struct {
	FurnitureID   string `dynamodbav:"furniture_id"`
	FurnitureName string `dynamodbav:"furniture_name"`
	VariantID     string `dynamodbav:"variant_id"`
	VariantName   string `dynamodbav:"variant_name"`
	Quantity      int    `dynamodbav:"quantity"`
	UnitPrice     string `dynamodbav:"unit_price"`
}

type quotationItem struct {
	ID     string              `dynamodbav:"id"`
	Date   string              `dynamodbav:"date"`
	Total  string              `dynamodbav:"total"`
	Status string              `dynamodbav:"status"`
	Lines  []quotationLineItem `dynamodbav:"lines"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string); lines are a list attribute of the quotation item.
//
// Confirm also touches the furniture table, so the repository carries
// both table names.

type QuotationDynamoRepository struct {
	ddb                *dynamodb.Client
	tableName          string
	furnitureTableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:                ddb,
		tableName:          getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		furnitureTableName: getenvDefault("FURNITURE_TABLE", defaultFurnitureTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it := toQuotationItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) List(ctx context.Context) ([]entities.Quotation, error) {
	quotations := make([]entities.Quotation, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it quotationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotations = append(quotations, fromQuotationItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return quotations, nil
}

// Confirm applies every stock decrement and the PENDING->CONFIRMED flip
// in one TransactWriteItems call. Decrements for lines that reference the
// same item are coalesced first: DynamoDB forbids two operations on one
// key inside a transaction. Any failed condition (stock drained, item
// deactivated, quotation already confirmed) cancels the whole
// transaction and the zero value is returned.
func (r *QuotationDynamoRepository) Confirm(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	type decrement struct {
		furnitureID string
		quantity    int
	}
	order := make([]string, 0, len(q.Lines))
	byItem := make(map[string]int, len(q.Lines))
	for _, line := range q.Lines {
		if _, ok := byItem[line.FurnitureID]; !ok {
			order = append(order, line.FurnitureID)
		}
		byItem[line.FurnitureID] += line.Quantity
	}
	decrements := make([]decrement, 0, len(order))
	for _, id := range order {
		decrements = append(decrements, decrement{furnitureID: id, quantity: byItem[id]})
	}

	items := make([]types.TransactWriteItem, 0, len(decrements)+1)
	for _, d := range decrements {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.furnitureTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: d.furnitureID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :active AND #stock >= :qty"),
				UpdateExpression:    aws.String("SET #stock = #stock - :qty, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#stock":      "stock",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":active":     &types.AttributeValueMemberS{Value: string(entities.FurnitureStatusActive)},
					":qty":        &types.AttributeValueMemberN{Value: strconv.Itoa(d.quantity)},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: q.ID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
			UpdateExpression:    aws.String("SET #status = :confirmed"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending":   &types.AttributeValueMemberS{Value: string(entities.QuotationStatusPending)},
				":confirmed": &types.AttributeValueMemberS{Value: string(entities.QuotationStatusConfirmed)},
			},
		},
	})

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}

	q.Status = entities.QuotationStatusConfirmed
	return q, nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	lines := make([]quotationLineItem, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, quotationLineItem{
			FurnitureID:   l.FurnitureID,
			FurnitureName: l.FurnitureName,
			VariantID:     l.VariantID,
			VariantName:   l.VariantName,
			Quantity:      l.Quantity,
			UnitPrice:     floatToString(l.UnitPrice),
		})
	}
	return quotationItem{
		ID:     q.ID,
		Date:   q.Date.UTC().Format(time.RFC3339Nano),
		Total:  floatToString(q.Total),
		Status: string(q.Status),
		Lines:  lines,
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	total, _ := strconv.ParseFloat(it.Total, 64)
	lines := make([]entities.QuotationLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		unitPrice, _ := strconv.ParseFloat(l.UnitPrice, 64)
		lines = append(lines, entities.QuotationLine{
			FurnitureID:   l.FurnitureID,
			FurnitureName: l.FurnitureName,
			VariantID:     l.VariantID,
			VariantName:   l.VariantName,
			Quantity:      l.Quantity,
			UnitPrice:     unitPrice,
		})
	}
	return entities.Quotation{
		ID:     it.ID,
		Date:   date,
		Total:  total,
		Status: entities.QuotationStatus(it.Status),
		Lines:  lines,
	}
}
