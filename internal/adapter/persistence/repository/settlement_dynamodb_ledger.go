package repository

import (
	"context"
	"errors"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const conditionalCheckFailedCode = "ConditionalCheckFailed"

// SettlementDynamoLedger applies the multi-row effects of one provider
// notification as a single TransactWriteItems call.
//
// The conditional checks inside each transaction are the concurrency story:
//   - the transaction put requires the provider tx id to be unused, so a
//     duplicate delivery cancels the whole write instead of double-counting;
//   - the rateio completion requires status ATIVO, so of two concurrent
//     payments crossing the target only one transitions and emits the event.
//
// A cancelled transaction caused by a failed condition is reported as
// applied=false, nil: "already settled", not an error.

type SettlementDynamoLedger struct {
	ddb               *dynamodb.Client
	rateiosTable      string
	participantsTable string
	intentsTable      string
	transactionsTable string
	eventsTable       string
}

var _ interfaces.ISettlementLedger = (*SettlementDynamoLedger)(nil)

func NewSettlementDynamoLedger(ddb *dynamodb.Client) *SettlementDynamoLedger {
	return &SettlementDynamoLedger{
		ddb:               ddb,
		rateiosTable:      getenvDefault("RATEIOS_TABLE", defaultRateiosTableName),
		participantsTable: getenvDefault("PARTICIPANTS_TABLE", defaultParticipantsTableName),
		intentsTable:      getenvDefault("PAYMENT_INTENTS_TABLE", defaultIntentsTableName),
		transactionsTable: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
		eventsTable:       getenvDefault("RATEIO_EVENTS_TABLE", defaultEventsTableName),
	}
}

func (l *SettlementDynamoLedger) RecordPayment(ctx context.Context, tx entities.Transaction, intentID string, event entities.RateioEvent) (bool, error) {
	txItem, err := attributevalue.MarshalMap(toTransactionItem(tx))
	if err != nil {
		return false, err
	}
	eventItem, err := attributevalue.MarshalMap(toRateioEventItem(event))
	if err != nil {
		return false, err
	}
	now := formatTime(nowUTC())

	return l.write(ctx, []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(l.transactionsTable),
				Item:                txItem,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(l.participantsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: tx.ParticipantID},
				},
				UpdateExpression:    aws.String("SET #status = :pago, #paid_amount = :amount, #updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pendente"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pago":     &types.AttributeValueMemberS{Value: string(entities.ParticipantStatusPago)},
					":pendente": &types.AttributeValueMemberS{Value: string(entities.ParticipantStatusPendente)},
					":amount":   &types.AttributeValueMemberN{Value: formatInt(tx.Amount)},
					":now":      &types.AttributeValueMemberS{Value: now},
				},
				ExpressionAttributeNames: map[string]string{
					"#id":          "id",
					"#status":      "status",
					"#paid_amount": "paid_amount",
					"#updated_at":  "updated_at",
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(l.intentsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: intentID},
				},
				UpdateExpression:    aws.String("SET #status = :pago, #updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pago": &types.AttributeValueMemberS{Value: string(entities.IntentStatusPago)},
					":now":  &types.AttributeValueMemberS{Value: now},
				},
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
			},
		},
		{
			Put: &types.Put{
				TableName: aws.String(l.eventsTable),
				Item:      eventItem,
			},
		},
	})
}

func (l *SettlementDynamoLedger) RecordRefund(ctx context.Context, txID, participantID string, event entities.RateioEvent) (bool, error) {
	eventItem, err := attributevalue.MarshalMap(toRateioEventItem(event))
	if err != nil {
		return false, err
	}
	now := formatTime(nowUTC())

	return l.write(ctx, []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(l.transactionsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: txID},
				},
				UpdateExpression:    aws.String("SET #status = :reembolsado, #refunded_at = :now, #updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pago"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":reembolsado": &types.AttributeValueMemberS{Value: string(entities.TransactionStatusReembolsado)},
					":pago":        &types.AttributeValueMemberS{Value: string(entities.TransactionStatusPago)},
					":now":         &types.AttributeValueMemberS{Value: now},
				},
				ExpressionAttributeNames: map[string]string{
					"#id":          "id",
					"#status":      "status",
					"#refunded_at": "refunded_at",
					"#updated_at":  "updated_at",
				},
			},
		},
		{
			// The participant may already be REEMBOLSADO when the creator
			// refunded synchronously; the condition admits both so the ledger
			// entry still lands. Idempotency comes from the transaction row.
			Update: &types.Update{
				TableName: aws.String(l.participantsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: participantID},
				},
				UpdateExpression:    aws.String("SET #status = :reembolsado, #updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:pago, :reembolsado)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":reembolsado": &types.AttributeValueMemberS{Value: string(entities.ParticipantStatusReembolsado)},
					":pago":        &types.AttributeValueMemberS{Value: string(entities.ParticipantStatusPago)},
					":now":         &types.AttributeValueMemberS{Value: now},
				},
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
			},
		},
		{
			Put: &types.Put{
				TableName: aws.String(l.eventsTable),
				Item:      eventItem,
			},
		},
	})
}

func (l *SettlementDynamoLedger) RecordFailure(ctx context.Context, txID string, event entities.RateioEvent) (bool, error) {
	eventItem, err := attributevalue.MarshalMap(toRateioEventItem(event))
	if err != nil {
		return false, err
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName: aws.String(l.eventsTable),
				Item:      eventItem,
			},
		},
	}
	if txID != "" {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(l.transactionsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: txID},
				},
				UpdateExpression:    aws.String("SET #status = :falhou, #updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pendente"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":falhou":   &types.AttributeValueMemberS{Value: string(entities.TransactionStatusFalhou)},
					":pendente": &types.AttributeValueMemberS{Value: string(entities.TransactionStatusPendente)},
					":now":      &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
				},
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
			},
		})
	}
	return l.write(ctx, items)
}

func (l *SettlementDynamoLedger) CompleteRateio(ctx context.Context, rateioID string, event entities.RateioEvent) (bool, error) {
	eventItem, err := attributevalue.MarshalMap(toRateioEventItem(event))
	if err != nil {
		return false, err
	}

	return l.write(ctx, []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(l.rateiosTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: rateioID},
				},
				UpdateExpression:    aws.String("SET #status = :concluido, #updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :ativo"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":concluido": &types.AttributeValueMemberS{Value: string(entities.RateioStatusConcluido)},
					":ativo":     &types.AttributeValueMemberS{Value: string(entities.RateioStatusAtivo)},
					":now":       &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
				},
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
			},
		},
		{
			Put: &types.Put{
				TableName: aws.String(l.eventsTable),
				Item:      eventItem,
			},
		},
	})
}

func (l *SettlementDynamoLedger) write(ctx context.Context, items []types.TransactWriteItem) (bool, error) {
	_, err := l.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) == conditionalCheckFailedCode {
					return false, nil
				}
			}
		}
		return false, err
	}
	return true, nil
}
