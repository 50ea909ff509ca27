package repository

import (
	"context"
	"errors"
	"strconv"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRateiosTableName = "rateios"
	rateiosCreatorIDIndex   = "creator_id-index"
)

type rateioItem struct {
	ID           string `dynamodbav:"id"`
	CreatorID    int64  `dynamodbav:"creator_id"`
	Name         string `dynamodbav:"name"`
	Description  string `dynamodbav:"description,omitempty"`
	ImageURL     string `dynamodbav:"image_url,omitempty"`
	TotalAmount  int64  `dynamodbav:"total_amount"`
	TargetAmount int64  `dynamodbav:"target_amount,omitempty"`
	PrivacyMode  string `dynamodbav:"privacy_mode"`
	Status       string `dynamodbav:"status"`
	ExpiresAt    string `dynamodbav:"expires_at,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// RateioDynamoRepository persists Rateio entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: creator_id-index (PK: creator_id, number)
//
// Status and privacy writes carry condition expressions on the stored state;
// a failed condition is returned as a zero-value Rateio, never an error.

type RateioDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateioRepository = (*RateioDynamoRepository)(nil)

func NewRateioDynamoRepository(ddb *dynamodb.Client) *RateioDynamoRepository {
	return &RateioDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATEIOS_TABLE", defaultRateiosTableName),
	}
}

func (r *RateioDynamoRepository) Create(ctx context.Context, e entities.Rateio) (entities.Rateio, error) {
	av, err := attributevalue.MarshalMap(toRateioItem(e))
	if err != nil {
		return entities.Rateio{}, err
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
		return entities.Rateio{}, err
	}
	return e, nil
}

func (r *RateioDynamoRepository) GetByID(ctx context.Context, id string) (entities.Rateio, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Rateio{}, err
	}
	if len(out.Item) == 0 {
		return entities.Rateio{}, nil
	}

	var it rateioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Rateio{}, err
	}
	return fromRateioItem(it), nil
}

func (r *RateioDynamoRepository) ListByCreator(ctx context.Context, creatorID int64) ([]entities.Rateio, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rateiosCreatorIDIndex),
		KeyConditionExpression: aws.String("creator_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberN{Value: strconv.FormatInt(creatorID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Rateio, 0, len(out.Items))
	for _, raw := range out.Items {
		var it rateioItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRateioItem(it))
	}
	return items, nil
}

func (r *RateioDynamoRepository) UpdateStatusIfActive(ctx context.Context, id string, status entities.RateioStatus) (entities.Rateio, error) {
	return r.conditionalUpdate(ctx, id,
		"SET #status = :status, #updated_at = :updated_at",
		"attribute_exists(#id) AND #status = :active",
		map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":active":     &types.AttributeValueMemberS{Value: string(entities.RateioStatusAtivo)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
	)
}

func (r *RateioDynamoRepository) TightenPrivacy(ctx context.Context, id string) (entities.Rateio, error) {
	return r.conditionalUpdate(ctx, id,
		"SET #privacy_mode = :total, #updated_at = :updated_at",
		"attribute_exists(#id) AND #privacy_mode = :parcial AND #status = :active",
		map[string]types.AttributeValue{
			":total":      &types.AttributeValueMemberS{Value: string(entities.PrivacyModeTotal)},
			":parcial":    &types.AttributeValueMemberS{Value: string(entities.PrivacyModeParcial)},
			":active":     &types.AttributeValueMemberS{Value: string(entities.RateioStatusAtivo)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		map[string]string{
			"#privacy_mode": "privacy_mode",
			"#status":       "status",
			"#updated_at":   "updated_at",
		},
	)
}

func (r *RateioDynamoRepository) conditionalUpdate(
	ctx context.Context,
	id, updateExpr, conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Rateio, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String(conditionExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Rateio{}, nil
		}
		return entities.Rateio{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Rateio{}, nil
	}
	var it rateioItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Rateio{}, err
	}
	return fromRateioItem(it), nil
}

func toRateioItem(e entities.Rateio) rateioItem {
	return rateioItem{
		ID:           e.ID,
		CreatorID:    e.CreatorID,
		Name:         e.Name,
		Description:  e.Description,
		ImageURL:     e.ImageURL,
		TotalAmount:  e.TotalAmount,
		TargetAmount: e.TargetAmount,
		PrivacyMode:  string(e.PrivacyMode),
		Status:       string(e.Status),
		ExpiresAt:    formatTime(e.ExpiresAt),
		CreatedAt:    formatTime(e.CreatedAt),
		UpdatedAt:    formatTime(e.UpdatedAt),
	}
}

func fromRateioItem(it rateioItem) entities.Rateio {
	return entities.Rateio{
		ID:           it.ID,
		CreatorID:    it.CreatorID,
		Name:         it.Name,
		Description:  it.Description,
		ImageURL:     it.ImageURL,
		TotalAmount:  it.TotalAmount,
		TargetAmount: it.TargetAmount,
		PrivacyMode:  entities.PrivacyMode(it.PrivacyMode),
		Status:       entities.RateioStatus(it.Status),
		ExpiresAt:    parseTime(it.ExpiresAt),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
