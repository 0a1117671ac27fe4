package email

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"schilderpro/internal/domain/entities"
	"schilderpro/internal/usecase/interfaces"
)

var ErrEmailGatewayNotConfigured = errors.New("email gateway not configured")

// SESSender delivers mail through Amazon SES v2.
type SESSender struct {
	client   *sesv2.Client
	mockMode bool
}

var _ interfaces.IEmailSender = (*SESSender)(nil)

// NewSESSender creates a sender using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: eu-west-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - SES_ENDPOINT (optional; e.g. http://localstack:4566)
//   - EMAIL_GATEWAY_MOCK (log instead of sending)
func NewSESSender() (*SESSender, error) {
	if isEmailGatewayMockEnabled() {
		log.Printf("[email][gateway] mock mode enabled")
		return &SESSender{mockMode: true}, nil
	}

	cfg, err := newSESConfigFromEnv(context.Background())
	if err != nil {
		log.Printf("[email][gateway] failed to create ses config err=%v", err)
		return nil, err
	}
	log.Printf("[email][gateway] SES client initialized")

	return &SESSender{client: sesv2.NewFromConfig(cfg)}, nil
}

func (s *SESSender) Send(ctx context.Context, msg entities.EmailMessage) (string, error) {
	if s != nil && s.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[email][gateway] mock send to=%s subject=%q message_id=%s", msg.To, msg.Subject, id)
		return id, nil
	}

	if s == nil || s.client == nil {
		log.Printf("[email][gateway] gateway not configured")
		return "", ErrEmailGatewayNotConfigured
	}
	log.Printf("[email][gateway] send start to=%s subject=%q", msg.To, msg.Subject)

	in := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTMLBody)},
					Text: &types.Content{Data: aws.String(msg.TextBody)},
				},
			},
		},
	}
	if msg.ReplyTo != "" {
		in.ReplyToAddresses = []string{msg.ReplyTo}
	}

	out, err := s.client.SendEmail(ctx, in)
	if err != nil {
		log.Printf("[email][gateway] send failed to=%s err=%v", msg.To, err)
		return "", err
	}

	messageID := aws.ToString(out.MessageId)
	log.Printf("[email][gateway] send success to=%s message_id=%s", msg.To, messageID)
	return messageID, nil
}

func newSESConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "eu-west-1")
	endpoint := os.Getenv("SES_ENDPOINT")

	// LocalStack does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == sesv2.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func isEmailGatewayMockEnabled() bool {
	for _, key := range []string{"EMAIL_GATEWAY_MOCK", "SES_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
