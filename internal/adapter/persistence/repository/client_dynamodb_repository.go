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

const clientsEmailIndex = "email-index"

type clientItem struct {
	ID             string  `dynamodbav:"id"`
	Name           string  `dynamodbav:"name"`
	Email          string  `dynamodbav:"email"`
	Phone          string  `dynamodbav:"phone"`
	Address        string  `dynamodbav:"address"`
	PropertyNotes  string  `dynamodbav:"property_notes,omitempty"`
	GateCode       string  `dynamodbav:"gate_code,omitempty"`
	ReferralSource string  `dynamodbav:"referral_source,omitempty"`
	Status         string  `dynamodbav:"status"`
	Latitude       float64 `dynamodbav:"latitude"`
	Longitude      float64 `dynamodbav:"longitude"`
	TotalSpent     float64 `dynamodbav:"total_spent"`
	JobCount       int     `dynamodbav:"job_count"`
	CreatedAt      string  `dynamodbav:"created_at"`
	LastContactAt  string  `dynamodbav:"last_contact_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// Emails are lowercased on every write and lookup so the index acts as
// a dedup key.

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Email = strings.ToLower(c.Email)
	it := toClientItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Client, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(clientsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: strings.ToLower(email)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Items) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	clients := make([]entities.Client, 0)

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
			var it clientItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			clients = append(clients, fromClientItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].CreatedAt.After(clients[j].CreatedAt)
	})
	return clients, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Email = strings.ToLower(c.Email)
	return r.update(ctx, c.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #name = :name, #email = :email, #phone = :phone, #address = :address, " +
			"#property_notes = :property_notes, #gate_code = :gate_code, #referral_source = :referral_source, " +
			"#status = :status, #last_contact_at = :last_contact_at"
		vals := map[string]types.AttributeValue{
			":name":            &types.AttributeValueMemberS{Value: c.Name},
			":email":           &types.AttributeValueMemberS{Value: c.Email},
			":phone":           &types.AttributeValueMemberS{Value: c.Phone},
			":address":         &types.AttributeValueMemberS{Value: c.Address},
			":property_notes":  &types.AttributeValueMemberS{Value: c.PropertyNotes},
			":gate_code":       &types.AttributeValueMemberS{Value: c.GateCode},
			":referral_source": &types.AttributeValueMemberS{Value: c.ReferralSource},
			":status":          &types.AttributeValueMemberS{Value: string(c.Status)},
			":last_contact_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#name":            "name",
			"#email":           "email",
			"#phone":           "phone",
			"#address":         "address",
			"#property_notes":  "property_notes",
			"#gate_code":       "gate_code",
			"#referral_source": "referral_source",
			"#status":          "status",
			"#last_contact_at": "last_contact_at",
		}
		return expr, vals, names
	})
}

func (r *ClientDynamoRepository) UpdateContact(ctx context.Context, id, name, phone, address string) (entities.Client, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #name = :name, #phone = :phone, #address = :address, #last_contact_at = :last_contact_at"
		vals := map[string]types.AttributeValue{
			":name":            &types.AttributeValueMemberS{Value: name},
			":phone":           &types.AttributeValueMemberS{Value: phone},
			":address":         &types.AttributeValueMemberS{Value: address},
			":last_contact_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#name":            "name",
			"#phone":           "phone",
			"#address":         "address",
			"#last_contact_at": "last_contact_at",
		}
		return expr, vals, names
	})
}

func (r *ClientDynamoRepository) AddSpend(ctx context.Context, id string, amount float64) (entities.Client, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #last_contact_at = :last_contact_at ADD #total_spent :amount"
		vals := map[string]types.AttributeValue{
			":amount":          &types.AttributeValueMemberN{Value: floatToString(amount)},
			":status":          &types.AttributeValueMemberS{Value: string(entities.ClientStatusActive)},
			":last_contact_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#total_spent":     "total_spent",
			"#status":          "status",
			"#last_contact_at": "last_contact_at",
		}
		return expr, vals, names
	})
}

func (r *ClientDynamoRepository) IncrementJobCount(ctx context.Context, id string) error {
	_, err := r.update(ctx, id, func(string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "ADD #job_count :one"
		vals := map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		}
		names := map[string]string{
			"#job_count": "job_count",
		}
		return expr, vals, names
	})
	return err
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ClientDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Client, error) {
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
			return entities.Client{}, nil
		}
		return entities.Client{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Client{}, nil
	}
	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		PropertyNotes:  c.PropertyNotes,
		GateCode:       c.GateCode,
		ReferralSource: c.ReferralSource,
		Status:         string(c.Status),
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		TotalSpent:     c.TotalSpent,
		JobCount:       c.JobCount,
		CreatedAt:      formatTime(c.CreatedAt),
		LastContactAt:  formatTime(c.LastContactAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:             it.ID,
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		Address:        it.Address,
		PropertyNotes:  it.PropertyNotes,
		GateCode:       it.GateCode,
		ReferralSource: it.ReferralSource,
		Status:         entities.ClientStatus(it.Status),
		Latitude:       it.Latitude,
		Longitude:      it.Longitude,
		TotalSpent:     it.TotalSpent,
		JobCount:       it.JobCount,
		CreatedAt:      parseTime(it.CreatedAt),
		LastContactAt:  parseTime(it.LastContactAt),
	}
}
