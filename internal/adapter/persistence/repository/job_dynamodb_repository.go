package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"doorway_ops/internal/domain/entities"
	"doorway_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	jobsClientIDIndex = "client_id-index"
	jobsEmailIndex    = "email-index"
)

type jobItem struct {
	ID            string  `dynamodbav:"id"`
	ClientID      string  `dynamodbav:"client_id"`
	Name          string  `dynamodbav:"name"`
	Email         string  `dynamodbav:"email"`
	Phone         string  `dynamodbav:"phone"`
	Address       string  `dynamodbav:"address"`
	Service       string  `dynamodbav:"service"`
	Status        string  `dynamodbav:"status"`
	Price         float64 `dynamodbav:"price"`
	Discount      float64 `dynamodbav:"discount"`
	TaxRate       float64 `dynamodbav:"tax_rate"`
	InvoiceNotes  string  `dynamodbav:"invoice_notes,omitempty"`
	ScheduledDate string  `dynamodbav:"scheduled_date,omitempty"`
	PaymentID     string  `dynamodbav:"payment_id,omitempty"`
	AmountPaid    float64 `dynamodbav:"amount_paid"`
	PaidAt        string  `dynamodbav:"paid_at,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: email-index (PK: email, SK: created_at)
//
// email-index backs the quote intake dedup window: created_at is the
// sort key so the newest submission for an address is one descending
// query away.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client, tableName string) *JobDynamoRepository {
	return &JobDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	j.Email = strings.ToLower(j.Email)
	it := toJobItem(j)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	jobs := make([]entities.Job, 0)

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
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			jobs = append(jobs, fromJobItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

func (r *JobDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

func (r *JobDynamoRepository) LatestByEmailSince(ctx context.Context, email string, since time.Time) (entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsEmailIndex),
		KeyConditionExpression: aws.String("email = :email AND created_at >= :since"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: strings.ToLower(email)},
			":since": &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339Nano)},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Items) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) UpdateBilling(ctx context.Context, id string, price, discount, taxRate float64, notes string) (entities.Job, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #price = :price, #discount = :discount, #tax_rate = :tax_rate, #invoice_notes = :invoice_notes, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":price":         &types.AttributeValueMemberN{Value: floatToString(price)},
			":discount":      &types.AttributeValueMemberN{Value: floatToString(discount)},
			":tax_rate":      &types.AttributeValueMemberN{Value: floatToString(taxRate)},
			":invoice_notes": &types.AttributeValueMemberS{Value: notes},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#price":         "price",
			"#discount":      "discount",
			"#tax_rate":      "tax_rate",
			"#invoice_notes": "invoice_notes",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) UpdateSchedule(ctx context.Context, id string, date time.Time) (entities.Job, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #scheduled_date = :scheduled_date, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(entities.JobStatusScheduled)},
			":scheduled_date": &types.AttributeValueMemberS{Value: date.UTC().Format(time.RFC3339Nano)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":         "status",
			"#scheduled_date": "scheduled_date",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) MarkPaid(ctx context.Context, id, paymentID string, amount float64, paidAt time.Time) (entities.Job, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #payment_id = :payment_id, #amount_paid = :amount_paid, #paid_at = :paid_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":      &types.AttributeValueMemberS{Value: string(entities.JobStatusPaid)},
			":payment_id":  &types.AttributeValueMemberS{Value: paymentID},
			":amount_paid": &types.AttributeValueMemberN{Value: floatToString(amount)},
			":paid_at":     &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":      "status",
			"#payment_id":  "payment_id",
			"#amount_paid": "amount_paid",
			"#paid_at":     "paid_at",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *JobDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Job, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:            j.ID,
		ClientID:      j.ClientID,
		Name:          j.Name,
		Email:         j.Email,
		Phone:         j.Phone,
		Address:       j.Address,
		Service:       j.Service,
		Status:        string(j.Status),
		Price:         j.Price,
		Discount:      j.Discount,
		TaxRate:       j.TaxRate,
		InvoiceNotes:  j.InvoiceNotes,
		ScheduledDate: formatTime(j.ScheduledDate),
		PaymentID:     j.PaymentID,
		AmountPaid:    j.AmountPaid,
		PaidAt:        formatTime(j.PaidAt),
		CreatedAt:     formatTime(j.CreatedAt),
		UpdatedAt:     formatTime(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:            it.ID,
		ClientID:      it.ClientID,
		Name:          it.Name,
		Email:         it.Email,
		Phone:         it.Phone,
		Address:       it.Address,
		Service:       it.Service,
		Status:        entities.JobStatus(it.Status),
		Price:         it.Price,
		Discount:      it.Discount,
		TaxRate:       it.TaxRate,
		InvoiceNotes:  it.InvoiceNotes,
		ScheduledDate: parseTime(it.ScheduledDate),
		PaymentID:     it.PaymentID,
		AmountPaid:    it.AmountPaid,
		PaidAt:        parseTime(it.PaidAt),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
