package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"kisekae_server/models"
)

// ProfileRepository is the persistence boundary for user profiles.
type ProfileRepository interface {
	Put(ctx context.Context, profile models.UserProfile) error
	GetByID(ctx context.Context, userID string) (*models.UserProfile, error)
	Update(ctx context.Context, userID string, changes map[string]interface{}) error
	RemoveFamily(ctx context.Context, userID string) error
}

// DynamoProfileRepository stores profiles in the UserProfile table with
// conditional writes: create requires the key to be absent, updates
// require it to exist.
type DynamoProfileRepository struct {
	Dynamo *DynamoService
}

func (r *DynamoProfileRepository) Put(ctx context.Context, profile models.UserProfile) error {
	err := r.Dynamo.PutItemIfAbsent(ctx, models.UserProfilesTable, profile, "userId")
	if errors.Is(err, ErrConditionFailed) {
		return models.ErrProfileExists
	}
	return err
}

func (r *DynamoProfileRepository) GetByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := r.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, models.ErrProfileNotFound
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// Update writes only the supplied fields. Field order in the expression
// is stable for log readability.
func (r *DynamoProfileRepository) Update(ctx context.Context, userID string, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return models.ErrNothingToUpdate
	}

	names := map[string]string{"#pk": "userId"}
	values := map[string]types.AttributeValue{}
	expr := "SET"

	fields := make([]string, 0, len(changes))
	for field := range changes {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		av, err := attributevalue.Marshal(changes[field])
		if err != nil {
			return fmt.Errorf("failed to marshal field %q: %w", field, err)
		}
		names["#"+field] = field
		values[":"+field] = av
		expr += " #" + field + " = :" + field + ","
	}
	expr = expr[:len(expr)-1]

	err := r.Dynamo.UpdateItemIfPresent(ctx, models.UserProfilesTable, expr, key(userID), values, names)
	if errors.Is(err, ErrConditionFailed) {
		return models.ErrProfileNotFound
	}
	return err
}

func (r *DynamoProfileRepository) RemoveFamily(ctx context.Context, userID string) error {
	names := map[string]string{"#pk": "userId", "#family": "family"}
	err := r.Dynamo.UpdateItemIfPresent(ctx, models.UserProfilesTable, "REMOVE #family", key(userID), nil, names)
	if errors.Is(err, ErrConditionFailed) {
		return models.ErrProfileNotFound
	}
	return err
}

func key(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}
