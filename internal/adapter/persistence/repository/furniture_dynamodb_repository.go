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

const defaultFurnitureTableName = "furniture"

type furnitureItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Type      string `dynamodbav:"item_type"`
	Material  string `dynamodbav:"material"`
	BasePrice string `dynamodbav:"base_price"`
	Stock     int    `dynamodbav:"stock"`
	Size      string `dynamodbav:"size"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// FurnitureDynamoRepository persists FurnitureItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Stock is stored as a number attribute so the sale-confirmation
// transaction can decrement it with an arithmetic update under a
// stock >= :qty condition.

type FurnitureDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFurnitureRepository = (*FurnitureDynamoRepository)(nil)

func NewFurnitureDynamoRepository(ddb *dynamodb.Client) *FurnitureDynamoRepository {
	return &FurnitureDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FURNITURE_TABLE", defaultFurnitureTableName),
	}
}

func (r *FurnitureDynamoRepository) Create(ctx context.Context, item entities.FurnitureItem) (entities.FurnitureItem, error) {
	it := toFurnitureItem(item)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.FurnitureItem{}, err
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
		return entities.FurnitureItem{}, err
	}
	return item, nil
}

func (r *FurnitureDynamoRepository) GetByID(ctx context.Context, id string) (entities.FurnitureItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FurnitureItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.FurnitureItem{}, nil
	}

	var it furnitureItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FurnitureItem{}, err
	}
	return fromFurnitureItem(it), nil
}

func (r *FurnitureDynamoRepository) ListActive(ctx context.Context) ([]entities.FurnitureItem, error) {
	items := make([]entities.FurnitureItem, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status = :active"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":active": &types.AttributeValueMemberS{Value: string(entities.FurnitureStatusActive)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it furnitureItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromFurnitureItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return items, nil
}

func (r *FurnitureDynamoRepository) Update(ctx context.Context, item entities.FurnitureItem) (entities.FurnitureItem, error) {
	it := toFurnitureItem(item)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.FurnitureItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FurnitureItem{}, nil
		}
		return entities.FurnitureItem{}, err
	}
	return item, nil
}

func (r *FurnitureDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.FurnitureStatus) (entities.FurnitureItem, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FurnitureItem{}, nil
		}
		return entities.FurnitureItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FurnitureItem{}, nil
	}

	var it furnitureItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FurnitureItem{}, err
	}
	return fromFurnitureItem(it), nil
}

func toFurnitureItem(e entities.FurnitureItem) furnitureItem {
	return furnitureItem{
		ID:        e.ID,
		Name:      e.Name,
		Type:      e.Type,
		Material:  e.Material,
		BasePrice: floatToString(e.BasePrice),
		Stock:     e.Stock,
		Size:      string(e.Size),
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFurnitureItem(it furnitureItem) entities.FurnitureItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	basePrice, _ := strconv.ParseFloat(it.BasePrice, 64)
	return entities.FurnitureItem{
		ID:        it.ID,
		Name:      it.Name,
		Type:      it.Type,
		Material:  it.Material,
		BasePrice: basePrice,
		Stock:     it.Stock,
		Size:      entities.SizeClass(it.Size),
		Status:    entities.FurnitureStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
