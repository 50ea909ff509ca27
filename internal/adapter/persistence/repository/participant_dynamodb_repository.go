package repository

import (
	"context"
	"errors"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/domain/pix"
	"rateio_pix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultParticipantsTableName = "participants"
	participantsRateioIDIndex    = "rateio_id-index"
)

type participantItem struct {
	ID         string `dynamodbav:"id"`
	RateioID   string `dynamodbav:"rateio_id"`
	UserID     int64  `dynamodbav:"user_id,omitempty"`
	PixKey     string `dynamodbav:"pix_key"`
	PixKeyType string `dynamodbav:"pix_key_type"`
	AutoRefund bool   `dynamodbav:"auto_refund"`
	Status     string `dynamodbav:"status"`
	PaidAmount int64  `dynamodbav:"paid_amount"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ParticipantDynamoRepository persists Participant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: rateio_id-index (PK: rateio_id, range: created_at)
//
// The range key keeps ListByRateio in creation order, which the privacy
// projection's positional labels rely on.

type ParticipantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IParticipantRepository = (*ParticipantDynamoRepository)(nil)

func NewParticipantDynamoRepository(ddb *dynamodb.Client) *ParticipantDynamoRepository {
	return &ParticipantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTICIPANTS_TABLE", defaultParticipantsTableName),
	}
}

func (r *ParticipantDynamoRepository) Create(ctx context.Context, p entities.Participant) (entities.Participant, error) {
	av, err := attributevalue.MarshalMap(toParticipantItem(p))
	if err != nil {
		return entities.Participant{}, err
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
		return entities.Participant{}, err
	}
	return p, nil
}

func (r *ParticipantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Participant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Participant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Participant{}, nil
	}

	var it participantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Participant{}, err
	}
	return fromParticipantItem(it), nil
}

func (r *ParticipantDynamoRepository) ListByRateio(ctx context.Context, rateioID string) ([]entities.Participant, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(participantsRateioIDIndex),
		KeyConditionExpression: aws.String("rateio_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: rateioID},
		},
		// Ascending on the created_at range key: creation order.
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Participant, 0, len(out.Items))
	for _, raw := range out.Items {
		var it participantItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromParticipantItem(it))
	}
	return items, nil
}

func (r *ParticipantDynamoRepository) MarkRefunded(ctx context.Context, id string) (entities.Participant, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :refunded, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :paid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":refunded":   &types.AttributeValueMemberS{Value: string(entities.ParticipantStatusReembolsado)},
			":paid":       &types.AttributeValueMemberS{Value: string(entities.ParticipantStatusPago)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
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
			return entities.Participant{}, nil
		}
		return entities.Participant{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Participant{}, nil
	}
	var it participantItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Participant{}, err
	}
	return fromParticipantItem(it), nil
}

func toParticipantItem(p entities.Participant) participantItem {
	return participantItem{
		ID:         p.ID,
		RateioID:   p.RateioID,
		UserID:     p.UserID,
		PixKey:     p.PixKey,
		PixKeyType: string(p.PixKeyType),
		AutoRefund: p.AutoRefund,
		Status:     string(p.Status),
		PaidAmount: p.PaidAmount,
		CreatedAt:  formatTime(p.CreatedAt),
		UpdatedAt:  formatTime(p.UpdatedAt),
	}
}

func fromParticipantItem(it participantItem) entities.Participant {
	return entities.Participant{
		ID:         it.ID,
		RateioID:   it.RateioID,
		UserID:     it.UserID,
		PixKey:     it.PixKey,
		PixKeyType: pix.KeyType(it.PixKeyType),
		AutoRefund: it.AutoRefund,
		Status:     entities.ParticipantStatus(it.Status),
		PaidAmount: it.PaidAmount,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
