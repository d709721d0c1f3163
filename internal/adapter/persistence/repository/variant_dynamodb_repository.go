package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"muebleria_xpto/internal/domain/entities"
	"muebleria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultVariantsTableName = "variants"
	variantNameMarkerPrefix  = "name#"
)

type variantItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	PriceDelta string `dynamodbav:"price_delta"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// variantNameMarker reserves a variant name. It shares the variants table
// under a prefixed key so the reservation and the variant row commit in
// one transaction.
type variantNameMarker struct {
	ID        string `dynamodbav:"id"`
	VariantID string `dynamodbav:"variant_id"`
}

// VariantDynamoRepository persists Variant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string); variant rows use the UUID, name markers use
//     "name#<lowercased name>".

type VariantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVariantRepository = (*VariantDynamoRepository)(nil)

func NewVariantDynamoRepository(ddb *dynamodb.Client) *VariantDynamoRepository {
	return &VariantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VARIANTS_TABLE", defaultVariantsTableName),
	}
}

// Create writes the variant and its name marker transactionally; both
// puts require the key to be absent, so a duplicate name cancels the
// whole transaction and the zero value is returned.
func (r *VariantDynamoRepository) Create(ctx context.Context, v entities.Variant) (entities.Variant, error) {
	av, err := attributevalue.MarshalMap(toVariantItem(v))
	if err != nil {
		return entities.Variant{}, err
	}
	markerAV, err := attributevalue.MarshalMap(variantNameMarker{
		ID:        nameMarkerKey(v.Name),
		VariantID: v.ID,
	})
	if err != nil {
		return entities.Variant{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                markerAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Variant{}, nil
		}
		return entities.Variant{}, err
	}
	return v, nil
}

func (r *VariantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Variant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Variant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Variant{}, nil
	}

	var it variantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Variant{}, err
	}
	return fromVariantItem(it), nil
}

func (r *VariantDynamoRepository) GetByName(ctx context.Context, name string) (entities.Variant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: nameMarkerKey(name)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Variant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Variant{}, nil
	}

	var marker variantNameMarker
	if err := attributevalue.UnmarshalMap(out.Item, &marker); err != nil {
		return entities.Variant{}, err
	}
	return r.GetByID(ctx, marker.VariantID)
}

func (r *VariantDynamoRepository) List(ctx context.Context) ([]entities.Variant, error) {
	variants := make([]entities.Variant, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("NOT begins_with(#id, :marker)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":marker": &types.AttributeValueMemberS{Value: variantNameMarkerPrefix},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it variantItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			variants = append(variants, fromVariantItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return variants, nil
}

func nameMarkerKey(name string) string {
	return variantNameMarkerPrefix + strings.ToLower(strings.TrimSpace(name))
}

func toVariantItem(v entities.Variant) variantItem {
	return variantItem{
		ID:         v.ID,
		Name:       v.Name,
		PriceDelta: floatToString(v.PriceDelta),
		CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromVariantItem(it variantItem) entities.Variant {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	priceDelta, _ := strconv.ParseFloat(it.PriceDelta, 64)
	return entities.Variant{
		ID:         it.ID,
		Name:       it.Name,
		PriceDelta: priceDelta,
		CreatedAt:  createdAt,
	}
}
