package repository

import (
	"context"
	"errors"
	"time"

	"threadquote/internal/domain/entities"
	"threadquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type customerItem struct {
	Name    string `dynamodbav:"name"`
	Company string `dynamodbav:"company"`
	Email   string `dynamodbav:"email"`
	Phone   string `dynamodbav:"phone"`
}

type adjusterItem struct {
	ID     string  `dynamodbav:"id"`
	Name   string  `dynamodbav:"name"`
	Type   string  `dynamodbav:"type"`
	Amount float64 `dynamodbav:"amount"`
}

type lineItemItem struct {
	ID            string             `dynamodbav:"id"`
	Title         string             `dynamodbav:"title"`
	Brand         string             `dynamodbav:"brand"`
	StyleNumber   string             `dynamodbav:"style_number"`
	Color         string             `dynamodbav:"color"`
	ProductID     string             `dynamodbav:"product_id"`
	SizeQty       map[string]int     `dynamodbav:"size_qty"`
	CostBySize    map[string]float64 `dynamodbav:"cost_by_size"`
	MarkupType    string             `dynamodbav:"markup_type"`
	MarkupPerItem float64            `dynamodbav:"markup_per_item"`
	Adjusters     []adjusterItem     `dynamodbav:"adjusters"`
}

type responseItem struct {
	Status string `dynamodbav:"status"`
	Notes  string `dynamodbav:"notes"`
	Date   string `dynamodbav:"date"`
}

type quoteItem struct {
	ID         string         `dynamodbav:"id"`
	Name       string         `dynamodbav:"name"`
	Customer   customerItem   `dynamodbav:"customer"`
	Notes      string         `dynamodbav:"notes"`
	LineItems  []lineItemItem `dynamodbav:"line_items"`
	Status     string         `dynamodbav:"status"`
	Responses  []responseItem `dynamodbav:"responses"`
	ShareToken string         `dynamodbav:"share_token"`
	CreatedAt  string         `dynamodbav:"created_at"`
	UpdatedAt  string         `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items and responses are stored inline on the quote item: a quote is
// always read and written as one aggregate, so a single-item layout keeps
// the repository to plain GetItem/UpdateItem calls.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateDetails(ctx context.Context, id string, name string, customer entities.Customer, notes string) (entities.Quote, error) {
	customerAV, err := attributevalue.Marshal(toCustomerItem(customer))
	if err != nil {
		return entities.Quote{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #name = :name, #customer = :customer, #notes = :notes, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: name},
			":customer":   customerAV,
			":notes":      &types.AttributeValueMemberS{Value: notes},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#name":       "name",
			"#customer":   "customer",
			"#notes":      "notes",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) ReplaceLineItems(ctx context.Context, id string, items []entities.LineItem) (entities.Quote, error) {
	lineItems := make([]lineItemItem, 0, len(items))
	for _, li := range items {
		lineItems = append(lineItems, toLineItemItem(li))
	}
	itemsAV, err := attributevalue.Marshal(lineItems)
	if err != nil {
		return entities.Quote{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #line_items = :line_items, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":line_items": itemsAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#line_items": "line_items",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) SetShareToken(ctx context.Context, id string, token string) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #share_token = :share_token, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":share_token": &types.AttributeValueMemberS{Value: token},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#share_token": "share_token",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) AppendResponse(ctx context.Context, id string, resp entities.Response) (entities.Quote, error) {
	respAV, err := attributevalue.Marshal([]responseItem{toResponseItem(resp)})
	if err != nil {
		return entities.Quote{}, err
	}

	// The appended entry also drives the quote status: response statuses are
	// a subset of quote statuses.
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #responses = list_append(if_not_exists(#responses, :empty), :resp), #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":resp":       respAV,
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":status":     &types.AttributeValueMemberS{Value: string(resp.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#responses":  "responses",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
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
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	lineItems := make([]lineItemItem, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		lineItems = append(lineItems, toLineItemItem(li))
	}
	responses := make([]responseItem, 0, len(q.Responses))
	for _, resp := range q.Responses {
		responses = append(responses, toResponseItem(resp))
	}

	return quoteItem{
		ID:         q.ID,
		Name:       q.Name,
		Customer:   toCustomerItem(q.Customer),
		Notes:      q.Notes,
		LineItems:  lineItems,
		Status:     string(q.Status),
		Responses:  responses,
		ShareToken: q.ShareToken,
		CreatedAt:  q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	lineItems := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lineItems = append(lineItems, fromLineItemItem(li))
	}
	responses := make([]entities.Response, 0, len(it.Responses))
	for _, resp := range it.Responses {
		responses = append(responses, fromResponseItem(resp))
	}

	return entities.Quote{
		ID:         it.ID,
		Name:       it.Name,
		Customer:   fromCustomerItem(it.Customer),
		Notes:      it.Notes,
		LineItems:  lineItems,
		Status:     entities.QuoteStatus(it.Status),
		Responses:  responses,
		ShareToken: it.ShareToken,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{Name: c.Name, Company: c.Company, Email: c.Email, Phone: c.Phone}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{Name: it.Name, Company: it.Company, Email: it.Email, Phone: it.Phone}
}

func toLineItemItem(li entities.LineItem) lineItemItem {
	adjusters := make([]adjusterItem, 0, len(li.Adjusters))
	for _, a := range li.Adjusters {
		adjusters = append(adjusters, adjusterItem{ID: a.ID, Name: a.Name, Type: string(a.Type), Amount: a.Amount})
	}

	return lineItemItem{
		ID:            li.ID,
		Title:         li.Title,
		Brand:         li.Brand,
		StyleNumber:   li.StyleNumber,
		Color:         li.Color,
		ProductID:     li.ProductID,
		SizeQty:       li.SizeQty,
		CostBySize:    li.CostBySize,
		MarkupType:    string(li.MarkupType),
		MarkupPerItem: li.MarkupPerItem,
		Adjusters:     adjusters,
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	adjusters := make([]entities.Adjuster, 0, len(it.Adjusters))
	for _, a := range it.Adjusters {
		adjusters = append(adjusters, entities.Adjuster{ID: a.ID, Name: a.Name, Type: entities.AdjusterType(a.Type), Amount: a.Amount})
	}

	return entities.LineItem{
		ID:            it.ID,
		Title:         it.Title,
		Brand:         it.Brand,
		StyleNumber:   it.StyleNumber,
		Color:         it.Color,
		ProductID:     it.ProductID,
		SizeQty:       it.SizeQty,
		CostBySize:    it.CostBySize,
		MarkupType:    entities.MarkupType(it.MarkupType),
		MarkupPerItem: it.MarkupPerItem,
		Adjusters:     adjusters,
	}
}

func toResponseItem(r entities.Response) responseItem {
	return responseItem{
		Status: string(r.Status),
		Notes:  r.Notes,
		Date:   r.Date.UTC().Format(time.RFC3339Nano),
	}
}

func fromResponseItem(it responseItem) entities.Response {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Response{
		Status: entities.ResponseStatus(it.Status),
		Notes:  it.Notes,
		Date:   date,
	}
}
