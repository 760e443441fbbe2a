// Package gateway builds authenticated handles to the identity provider and the
// document store.
//
// Two trust levels exist. An AdminClient acts with the standing secret credential
// and is used before any end-user session exists: looking up and creating user
// documents, issuing email codes on behalf of an anonymous caller. A SessionClient
// acts as an already signed-in caller and requires a valid session token.
//
// Handles are cheap and stateless beyond the configuration they wrap. Every
// capability accessor constructs its underlying AWS client on demand, so callers
// build a fresh handle per request instead of sharing one.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-docs-auth/internal/domain"
	"github.com/go-docs-auth/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-docs-auth/internal/infrastructure/jwt"
	s3infra "github.com/go-docs-auth/internal/infrastructure/s3"
)

const (
	DefaultCodeTTL    = 15 * time.Minute
	DefaultSessionTTL = 7 * 24 * time.Hour
	DefaultSiteName   = "Docs"

	// MaxCodeAttempts is how many wrong codes a pending verification survives.
	MaxCodeAttempts = 5
)

// ErrNoAdminCredential is returned when an administrative handle is requested
// without the standing secret.
var ErrNoAdminCredential = errors.New("admin credential is not configured")

// Config is everything a handle needs. It is passed explicitly to the
// constructors; the package keeps no client state of its own.
type Config struct {
	Endpoint      string // AWS endpoint override, LocalStack in dev
	Region        string
	ProjectID     string // prefixes identity provider tables
	AccessKeyID   string
	Secret        string // standing admin secret
	DatabaseID    string // prefixes document collections
	Bucket        string // avatar/object bucket; empty disables storage
	DefaultAvatar string // used when no bucket is configured
	SiteName      string
	CodeTTL       time.Duration
	SessionTTL    time.Duration
}

func (c Config) withDefaults() Config {
	if c.CodeTTL == 0 {
		c.CodeTTL = DefaultCodeTTL
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if c.SiteName == "" {
		c.SiteName = DefaultSiteName
	}
	return c
}

// Mailer delivers the verification email.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// TokenVerifier validates session tokens.
type TokenVerifier interface {
	Verify(token string) (*jwtinfra.Claims, error)
}

// Backends are the long-lived collaborators shared by all handles.
type Backends struct {
	AWS      aws.Config // ambient credentials; admin handles replace them
	Mailer   Mailer
	Verifier TokenVerifier
}

// AccountOps are the identity provider operations available to an admin handle.
type AccountOps interface {
	CreateEmailToken(ctx context.Context, userID, email string) (*domain.EmailToken, error)
	CreateSession(ctx context.Context, userID, secret string) (*domain.Session, error)
}

// SessionAccountOps act on the caller's own account.
type SessionAccountOps interface {
	Get(ctx context.Context) (*domain.Identity, error)
	DeleteSession(ctx context.Context) error
}

// DocumentOps query and write collection documents.
type DocumentOps interface {
	ListDocuments(ctx context.Context, collection string, queries ...dynamo.Query) (*dynamo.DocumentList, error)
	CreateDocument(ctx context.Context, collection, documentID string, data interface{}) (*dynamo.Document, error)
}

// StorageOps manage objects in the configured bucket.
type StorageOps interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	UploadBase64(ctx context.Context, key, b64Data string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	ObjectURL(key string) string
}

// AvatarOps produce avatar references for user documents.
type AvatarOps interface {
	Default(ctx context.Context) (string, error)
	URL(ctx context.Context, avatar string) (string, error)
}

// Admin is the administrative capability set.
type Admin interface {
	Accounts() AccountOps
	Documents() DocumentOps
	Storage() StorageOps
	Avatars() AvatarOps
}

// Session is the session-scoped capability set.
type Session interface {
	Account() SessionAccountOps
	Documents() DocumentOps
	Claims() *jwtinfra.Claims
}

// AdminFactory builds a fresh administrative handle per call.
type AdminFactory func() (Admin, error)

// SessionFactory builds a session-scoped handle for token.
type SessionFactory func(token string) (Session, error)

// Factories binds cfg and b into the two handle constructors.
func Factories(cfg Config, b Backends) (AdminFactory, SessionFactory) {
	admin := func() (Admin, error) {
		c, err := NewAdminClient(cfg, b)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	session := func(token string) (Session, error) {
		c, err := NewSessionClient(cfg, b, token)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return admin, session
}

// AdminClient is the administrative handle.
type AdminClient struct {
	cfg    Config
	aws    aws.Config
	mailer Mailer
}

var _ Admin = (*AdminClient)(nil)

// NewAdminClient builds an administrative handle signed with the standing secret.
func NewAdminClient(cfg Config, b Backends) (*AdminClient, error) {
	if cfg.AccessKeyID == "" || cfg.Secret == "" {
		return nil, ErrNoAdminCredential
	}
	if b.Mailer == nil {
		return nil, fmt.Errorf("admin client requires a mailer")
	}
	cfg = cfg.withDefaults()
	awsCfg := b.AWS.Copy()
	if cfg.Region != "" {
		awsCfg.Region = cfg.Region
	}
	awsCfg.Credentials = aws.NewCredentialsCache(
		credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.Secret, ""),
	)
	return &AdminClient{cfg: cfg, aws: awsCfg, mailer: b.Mailer}, nil
}

func (c *AdminClient) dynamoClient() *dynamodb.Client {
	return dynamo.NewClient(c.aws, c.cfg.Endpoint)
}

func (c *AdminClient) Accounts() AccountOps {
	client := c.dynamoClient()
	tables := dynamo.NewTables(c.cfg.ProjectID, c.cfg.DatabaseID, "")
	return newAccounts(
		dynamo.NewIdentityRepo(client, tables.Identities),
		dynamo.NewTokenRepo(client, tables.Tokens),
		dynamo.NewSessionRepo(client, tables.Sessions),
		c.mailer,
		c.cfg,
	)
}

func (c *AdminClient) Documents() DocumentOps {
	return dynamo.NewDocumentStore(c.dynamoClient(), c.cfg.DatabaseID)
}

// Storage returns nil when no bucket is configured.
func (c *AdminClient) Storage() StorageOps {
	if c.cfg.Bucket == "" {
		return nil
	}
	return s3infra.NewStore(s3infra.NewClient(c.aws, c.cfg.Endpoint), c.cfg.Bucket)
}

func (c *AdminClient) Avatars() AvatarOps {
	return &avatars{storage: c.Storage(), bucket: c.cfg.Bucket, fallback: c.cfg.DefaultAvatar}
}

// SessionClient is the session-scoped handle.
type SessionClient struct {
	cfg    Config
	aws    aws.Config
	claims *jwtinfra.Claims
}

var _ Session = (*SessionClient)(nil)

// NewSessionClient builds a handle acting as the owner of token.
// A missing, malformed or expired token yields *domain.NoSessionError.
func NewSessionClient(cfg Config, b Backends, token string) (*SessionClient, error) {
	if token == "" {
		return nil, &domain.NoSessionError{}
	}
	if b.Verifier == nil {
		return nil, &domain.NoSessionError{Reason: "session verification is not configured"}
	}
	claims, err := b.Verifier.Verify(token)
	if err != nil {
		return nil, &domain.NoSessionError{Reason: "invalid or expired token"}
	}
	cfg = cfg.withDefaults()
	awsCfg := b.AWS.Copy()
	if cfg.Region != "" {
		awsCfg.Region = cfg.Region
	}
	return &SessionClient{cfg: cfg, aws: awsCfg, claims: claims}, nil
}

func (c *SessionClient) dynamoClient() *dynamodb.Client {
	return dynamo.NewClient(c.aws, c.cfg.Endpoint)
}

func (c *SessionClient) Claims() *jwtinfra.Claims { return c.claims }

func (c *SessionClient) Account() SessionAccountOps {
	client := c.dynamoClient()
	tables := dynamo.NewTables(c.cfg.ProjectID, c.cfg.DatabaseID, "")
	return &sessionAccount{
		identities: dynamo.NewIdentityRepo(client, tables.Identities),
		sessions:   dynamo.NewSessionRepo(client, tables.Sessions),
		claims:     c.claims,
		now:        time.Now,
	}
}

func (c *SessionClient) Documents() DocumentOps {
	return dynamo.NewDocumentStore(c.dynamoClient(), c.cfg.DatabaseID)
}
