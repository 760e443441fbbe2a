package sns

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublishAPI struct{ mock.Mock }

func (m *mockPublishAPI) Publish(ctx context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*sns.PublishOutput)
	return out, args.Error(1)
}

func TestNewPublisher_RequiresTopic(t *testing.T) {
	_, err := NewPublisher(aws.Config{Region: "us-east-1"}, "", "")
	assert.Error(t, err)
}

func TestPublish_SetsTopicAndEventType(t *testing.T) {
	api := &mockPublishAPI{}
	api.On("Publish", mock.Anything, mock.MatchedBy(func(in *sns.PublishInput) bool {
		attr := in.MessageAttributes["event_type"]
		return *in.TopicArn == "arn:aws:sns:us-east-1:000000000000:users" &&
			*in.Message == `{"email":"new@x.com"}` &&
			*attr.StringValue == "user.provisioned"
	})).Return(&sns.PublishOutput{}, nil)

	p := &publisher{client: api, topicARN: "arn:aws:sns:us-east-1:000000000000:users"}
	err := p.Publish(context.Background(), "user.provisioned", map[string]string{"email": "new@x.com"})
	require.NoError(t, err)
	api.AssertExpectations(t)
}
