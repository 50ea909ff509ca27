package repository

import (
	"context"
	"fmt"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEventsTableName = "rateio_events"

type rateioEventItem struct {
	RateioID      string `dynamodbav:"rateio_id"`
	Sort          string `dynamodbav:"sort"`
	ID            string `dynamodbav:"id"`
	ParticipantID string `dynamodbav:"participant_id,omitempty"`
	EventType     string `dynamodbav:"event_type"`
	Message       string `dynamodbav:"message,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// RateioEventDynamoRepository persists the append-only audit log.
//
// Table requirements:
//   - PK: rateio_id (string), SK: sort (created_at#id)
//
// The id suffix on the sort key keeps two events written in the same
// nanosecond from colliding. ListByRateio queries newest-first.

type RateioEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateioEventRepository = (*RateioEventDynamoRepository)(nil)

func NewRateioEventDynamoRepository(ddb *dynamodb.Client) *RateioEventDynamoRepository {
	return &RateioEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATEIO_EVENTS_TABLE", defaultEventsTableName),
	}
}

func (r *RateioEventDynamoRepository) Append(ctx context.Context, e entities.RateioEvent) (entities.RateioEvent, error) {
	av, err := attributevalue.MarshalMap(toRateioEventItem(e))
	if err != nil {
		return entities.RateioEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sort)"),
		ExpressionAttributeNames: map[string]string{
			"#sort": "sort",
		},
	})
	if err != nil {
		return entities.RateioEvent{}, err
	}
	return e, nil
}

func (r *RateioEventDynamoRepository) ListByRateio(ctx context.Context, rateioID string) ([]entities.RateioEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("rateio_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: rateioID},
		},
		// Descending on the sort key: newest events first.
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.RateioEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it rateioEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRateioEventItem(it))
	}
	return items, nil
}

func eventSortKey(e entities.RateioEvent) string {
	return fmt.Sprintf("%s#%s", formatTime(e.CreatedAt), e.ID)
}

func toRateioEventItem(e entities.RateioEvent) rateioEventItem {
	return rateioEventItem{
		RateioID:      e.RateioID,
		Sort:          eventSortKey(e),
		ID:            e.ID,
		ParticipantID: e.ParticipantID,
		EventType:     string(e.EventType),
		Message:       e.Message,
		CreatedAt:     formatTime(e.CreatedAt),
	}
}

func fromRateioEventItem(it rateioEventItem) entities.RateioEvent {
	return entities.RateioEvent{
		ID:            it.ID,
		RateioID:      it.RateioID,
		ParticipantID: it.ParticipantID,
		EventType:     entities.EventType(it.EventType),
		Message:       it.Message,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
