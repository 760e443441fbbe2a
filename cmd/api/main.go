package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-docs-auth/internal/config"
	"github.com/go-docs-auth/internal/gateway"
	"github.com/go-docs-auth/internal/infrastructure/awsconf"
	"github.com/go-docs-auth/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-docs-auth/internal/infrastructure/jwt"
	"github.com/go-docs-auth/internal/infrastructure/smtp"
	"github.com/go-docs-auth/internal/infrastructure/sns"
	transporthttp "github.com/go-docs-auth/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	awsCfg, err := awsconf.Load(context.Background(), cfg)
	if err != nil {
		log.Fatalf("aws config: %v", err)
	}

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	tables := dynamo.NewTables(cfg.ProjectID, cfg.DatabaseID, cfg.UsersCollectionID)
	dynamo.Bootstrap(context.Background(), dynamo.NewClient(awsCfg, cfg.AWSEndpointURL), tables)

	// JWT provider (optional, session completion is disabled without keys).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg.JWTPrivateKeyPath, cfg.JWTPublicKeyPath, cfg.JWTExpiry); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	backends := gateway.Backends{AWS: awsCfg, Mailer: smtp.NewMailer(cfg)}
	if jwtProvider != nil {
		backends.Verifier = jwtProvider
	}
	adminFactory, sessionFactory := gateway.Factories(gateway.Config{
		Endpoint:      cfg.AWSEndpointURL,
		Region:        cfg.AWSRegion,
		ProjectID:     cfg.ProjectID,
		AccessKeyID:   cfg.AWSAccessKeyID,
		Secret:        cfg.AWSSecretKey,
		DatabaseID:    cfg.DatabaseID,
		Bucket:        cfg.S3BucketName,
		DefaultAvatar: cfg.DefaultAvatarURL,
		SiteName:      cfg.SiteName,
		CodeTTL:       cfg.OTPExpiry,
		SessionTTL:    cfg.JWTExpiry,
	}, backends)
	if _, err := adminFactory(); err != nil {
		log.Printf("WARN: admin gateway not available, account creation will fail: %v", err)
	}

	deps := &transporthttp.Deps{
		Admin:           adminFactory,
		Session:         sessionFactory,
		UsersCollection: cfg.UsersCollectionID,
	}
	if jwtProvider != nil {
		deps.Signer = jwtProvider
	}

	// SNS event publisher (optional, graceful fallback).
	if pub, err := sns.NewPublisher(awsCfg, cfg.AWSEndpointURL, cfg.SNSTopicARN); err == nil {
		deps.Publisher = pub
	} else {
		log.Printf("WARN: SNS publisher not available: %v", err)
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
