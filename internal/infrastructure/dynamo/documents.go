package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-docs-auth/internal/domain"
)

const documentIDAttr = "document_id"

// Query is an equality filter on one document attribute.
// It is served by the "<field>-index" GSI of the collection table.
type Query struct {
	Field  string
	Values []string
}

// Equal matches documents whose field equals any of values.
func Equal(field string, values ...string) Query {
	return Query{Field: field, Values: values}
}

// Document is a raw stored document.
type Document struct {
	ID   string
	Item map[string]types.AttributeValue
}

// NewDocument marshals v into a Document with the given id.
func NewDocument(id string, v interface{}) (Document, error) {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return Document{}, fmt.Errorf("marshal document: %w", err)
	}
	item[documentIDAttr] = &types.AttributeValueMemberS{Value: id}
	return Document{ID: id, Item: item}, nil
}

// Decode unmarshals the document into v.
func (d Document) Decode(v interface{}) error {
	return attributevalue.UnmarshalMap(d.Item, v)
}

// DocumentList is an ordered result set with its total count.
type DocumentList struct {
	Total     int
	Documents []Document
}

// DocumentStore stores schemaless documents in one table per database/collection pair.
type DocumentStore struct {
	client     API
	databaseID string
}

func NewDocumentStore(client API, databaseID string) *DocumentStore {
	return &DocumentStore{client: client, databaseID: databaseID}
}

// ListDocuments returns the documents of collection matching every query.
// The first query selects the index; the rest are applied as filter expressions.
func (s *DocumentStore) ListDocuments(ctx context.Context, collection string, queries ...Query) (*DocumentList, error) {
	if len(queries) == 0 {
		return nil, fmt.Errorf("at least one query is required: %w", domain.ErrBadRequest)
	}
	for _, q := range queries {
		if q.Field == "" || len(q.Values) == 0 {
			return nil, fmt.Errorf("query on %q has no values: %w", q.Field, domain.ErrBadRequest)
		}
	}

	list := &DocumentList{}
	// One Query call per value of the indexed attribute; results keep value order.
	for _, value := range queries[0].Values {
		in := &dynamodb.QueryInput{
			TableName:                 aws.String(CollectionTable(s.databaseID, collection)),
			IndexName:                 aws.String(queries[0].Field + "-index"),
			KeyConditionExpression:    aws.String("#k = :k"),
			ExpressionAttributeNames:  map[string]string{"#k": queries[0].Field},
			ExpressionAttributeValues: map[string]types.AttributeValue{":k": &types.AttributeValueMemberS{Value: value}},
		}
		if filter := filterExpr(queries[1:], in.ExpressionAttributeNames, in.ExpressionAttributeValues); filter != "" {
			in.FilterExpression = aws.String(filter)
		}
		out, err := s.client.Query(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("query %s by %s: %w", collection, queries[0].Field, err)
		}
		for _, item := range out.Items {
			doc := Document{Item: item}
			if v, ok := item[documentIDAttr].(*types.AttributeValueMemberS); ok {
				doc.ID = v.Value
			}
			list.Documents = append(list.Documents, doc)
		}
	}
	list.Total = len(list.Documents)
	return list, nil
}

// CreateDocument writes data under documentID. An existing id is never overwritten.
func (s *DocumentStore) CreateDocument(ctx context.Context, collection, documentID string, data interface{}) (*Document, error) {
	doc, err := NewDocument(documentID, data)
	if err != nil {
		return nil, err
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(CollectionTable(s.databaseID, collection)),
		Item:                doc.Item,
		ConditionExpression: aws.String("attribute_not_exists(" + documentIDAttr + ")"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, fmt.Errorf("document %s already exists: %w", documentID, domain.ErrConflict)
		}
		return nil, fmt.Errorf("put document in %s: %w", collection, err)
	}
	return &doc, nil
}

// filterExpr renders extra equality queries as an AND of IN clauses, adding
// placeholders to names and values.
func filterExpr(queries []Query, names map[string]string, values map[string]types.AttributeValue) string {
	expr := ""
	for i, q := range queries {
		nameKey := fmt.Sprintf("#q%d", i)
		names[nameKey] = q.Field
		clause := nameKey + " IN ("
		for j, v := range q.Values {
			valueKey := fmt.Sprintf(":q%d_%d", i, j)
			values[valueKey] = &types.AttributeValueMemberS{Value: v}
			if j > 0 {
				clause += ", "
			}
			clause += valueKey
		}
		clause += ")"
		if expr != "" {
			expr += " AND "
		}
		expr += clause
	}
	return expr
}
