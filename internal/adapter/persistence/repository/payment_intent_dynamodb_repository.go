package repository

import (
	"context"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultIntentsTableName     = "payment_intents"
	intentsParticipantIDIndex   = "participant_id-index"
)

type paymentIntentItem struct {
	ID            string `dynamodbav:"id"`
	ParticipantID string `dynamodbav:"participant_id"`
	QRCode        string `dynamodbav:"qr_code,omitempty"`
	CopyPaste     string `dynamodbav:"copy_paste,omitempty"`
	Status        string `dynamodbav:"status"`
	ExpiresAt     string `dynamodbav:"expires_at"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PaymentIntentDynamoRepository persists PaymentIntent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string), the Pagar.me charge id. Using the provider id as PK
//     guarantees one intent per charge; webhook lookups become a key read.
//   - GSI: participant_id-index (PK: participant_id, range: created_at)

type PaymentIntentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb *dynamodb.Client) *PaymentIntentDynamoRepository {
	return &PaymentIntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_INTENTS_TABLE", defaultIntentsTableName),
	}
}

func (r *PaymentIntentDynamoRepository) Create(ctx context.Context, i entities.PaymentIntent) (entities.PaymentIntent, error) {
	av, err := attributevalue.MarshalMap(toPaymentIntentItem(i))
	if err != nil {
		return entities.PaymentIntent{}, err
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
		return entities.PaymentIntent{}, err
	}
	return i, nil
}

func (r *PaymentIntentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func (r *PaymentIntentDynamoRepository) GetLatestByParticipant(ctx context.Context, participantID string) (entities.PaymentIntent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(intentsParticipantIDIndex),
		KeyConditionExpression: aws.String("participant_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: participantID},
		},
		// Descending on created_at: newest intent first.
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func toPaymentIntentItem(i entities.PaymentIntent) paymentIntentItem {
	return paymentIntentItem{
		ID:            i.ID,
		ParticipantID: i.ParticipantID,
		QRCode:        i.QRCode,
		CopyPaste:     i.CopyPaste,
		Status:        string(i.Status),
		ExpiresAt:     formatTime(i.ExpiresAt),
		CreatedAt:     formatTime(i.CreatedAt),
		UpdatedAt:     formatTime(i.UpdatedAt),
	}
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntent {
	return entities.PaymentIntent{
		ID:            it.ID,
		ParticipantID: it.ParticipantID,
		QRCode:        it.QRCode,
		CopyPaste:     it.CopyPaste,
		Status:        entities.IntentStatus(it.Status),
		ExpiresAt:     parseTime(it.ExpiresAt),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
