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
	defaultTransactionsTableName = "transactions"
	transactionsRateioIDIndex    = "rateio_id-index"
)

type transactionItem struct {
	ID            string `dynamodbav:"id"`
	ParticipantID string `dynamodbav:"participant_id"`
	RateioID      string `dynamodbav:"rateio_id"`
	Amount        int64  `dynamodbav:"amount"`
	Status        string `dynamodbav:"status"`
	PaidAt        string `dynamodbav:"paid_at,omitempty"`
	RefundedAt    string `dynamodbav:"refunded_at,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository reads the transaction ledger.
//
// Table requirements:
//   - PK: id (string), the provider transaction id
//   - GSI: rateio_id-index (PK: rateio_id)
//
// Writes happen exclusively inside SettlementDynamoLedger transactions.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByRateio(ctx context.Context, rateioID string) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsRateioIDIndex),
		KeyConditionExpression: aws.String("rateio_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: rateioID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:            t.ID,
		ParticipantID: t.ParticipantID,
		RateioID:      t.RateioID,
		Amount:        t.Amount,
		Status:        string(t.Status),
		PaidAt:        formatTime(t.PaidAt),
		RefundedAt:    formatTime(t.RefundedAt),
		CreatedAt:     formatTime(t.CreatedAt),
		UpdatedAt:     formatTime(t.UpdatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	return entities.Transaction{
		ID:            it.ID,
		ParticipantID: it.ParticipantID,
		RateioID:      it.RateioID,
		Amount:        it.Amount,
		Status:        entities.TransactionStatus(it.Status),
		PaidAt:        parseTime(it.PaidAt),
		RefundedAt:    parseTime(it.RefundedAt),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
