package repository

import (
	"context"
	"time"

	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const contributionsGiftIDIndex = "gift_id-index"

type contributionItem struct {
	PaymentID     string  `dynamodbav:"payment_id"`
	ID            string  `dynamodbav:"id"`
	GiftID        string  `dynamodbav:"gift_id"`
	GuestName     string  `dynamodbav:"guest_name"`
	GuestEmail    string  `dynamodbav:"guest_email"`
	Amount        float64 `dynamodbav:"amount"`
	Message       string  `dynamodbav:"message,omitempty"`
	PaymentStatus string  `dynamodbav:"payment_status"`
	PaymentMethod string  `dynamodbav:"payment_method"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// ContributionDynamoRepository persists Contribution entities in DynamoDB.
//
// Table requirements:
//   - PK: payment_id (string), the provider payment id, which makes the
//     idempotency key a real uniqueness constraint
//   - GSI: gift_id-index (PK: gift_id)
//
// The two conditional writes (Create, MarkApproved) are what gives the
// reconciliation engine its at-most-once guarantees; see the interface docs.

type ContributionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContributionRepository = (*ContributionDynamoRepository)(nil)

func NewContributionDynamoRepository(ddb *dynamodb.Client, tableName string) *ContributionDynamoRepository {
	return &ContributionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ContributionDynamoRepository) Create(ctx context.Context, c entities.Contribution) (entities.Contribution, error) {
	it := toContributionItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Contribution{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(payment_id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Contribution{}, interfaces.ErrContributionExists
		}
		return entities.Contribution{}, err
	}
	return c, nil
}

func (r *ContributionDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.Contribution, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contribution{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contribution{}, nil
	}

	var it contributionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contribution{}, err
	}
	return fromContributionItem(it), nil
}

// MarkApproved performs the check-and-flip in one conditional UpdateItem:
// two concurrent deliveries of the same approval race on the condition and
// exactly one observes applied=true.
func (r *ContributionDynamoRepository) MarkApproved(ctx context.Context, paymentID string) (entities.Contribution, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		UpdateExpression:    aws.String("SET payment_status = :st, updated_at = :ts"),
		ConditionExpression: aws.String("attribute_exists(payment_id) AND payment_status <> :st"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusApproved)},
			":ts": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			existing, gerr := r.GetByPaymentID(ctx, paymentID)
			if gerr != nil {
				return entities.Contribution{}, false, gerr
			}
			if existing.PaymentID == "" {
				return entities.Contribution{}, false, interfaces.ErrContributionNotFound
			}
			return existing, false, nil
		}
		return entities.Contribution{}, false, err
	}

	var it contributionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contribution{}, false, err
	}
	return fromContributionItem(it), true, nil
}

func (r *ContributionDynamoRepository) UpdateStatus(ctx context.Context, paymentID string, status entities.PaymentStatus) (entities.Contribution, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		UpdateExpression:    aws.String("SET payment_status = :st, updated_at = :ts"),
		ConditionExpression: aws.String("attribute_exists(payment_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st": &types.AttributeValueMemberS{Value: string(status)},
			":ts": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Contribution{}, interfaces.ErrContributionNotFound
		}
		return entities.Contribution{}, err
	}

	var it contributionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contribution{}, err
	}
	return fromContributionItem(it), nil
}

func (r *ContributionDynamoRepository) List(ctx context.Context) ([]entities.Contribution, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalContributions(out.Items)
}

func (r *ContributionDynamoRepository) ListByGiftID(ctx context.Context, giftID string) ([]entities.Contribution, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contributionsGiftIDIndex),
		KeyConditionExpression: aws.String("gift_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: giftID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalContributions(out.Items)
}

func unmarshalContributions(items []map[string]types.AttributeValue) ([]entities.Contribution, error) {
	list := make([]entities.Contribution, 0, len(items))
	for _, raw := range items {
		var it contributionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		list = append(list, fromContributionItem(it))
	}
	return list, nil
}

func toContributionItem(c entities.Contribution) contributionItem {
	return contributionItem{
		PaymentID:     c.PaymentID,
		ID:            c.ID,
		GiftID:        c.GiftID,
		GuestName:     c.GuestName,
		GuestEmail:    c.GuestEmail,
		Amount:        c.Amount,
		Message:       c.Message,
		PaymentStatus: string(c.PaymentStatus),
		PaymentMethod: string(c.PaymentMethod),
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContributionItem(it contributionItem) entities.Contribution {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Contribution{
		PaymentID:     it.PaymentID,
		ID:            it.ID,
		GiftID:        it.GiftID,
		GuestName:     it.GuestName,
		GuestEmail:    it.GuestEmail,
		Amount:        it.Amount,
		Message:       it.Message,
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		CreatedAt:     created,
		UpdatedAt:     updated,
	}
}
